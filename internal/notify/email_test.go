package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/kostsaya/kost-manager/internal/mocks/notify"
	"github.com/kostsaya/kost-manager/internal/model"
)

func TestEmailChannel_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	ch := NewEmailChannel(clientMock)

	var gotSubject string

	clientMock.EXPECT().Configured().Return(true)
	clientMock.EXPECT().
		Send("budi@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, subject, _, _ string) error {
			gotSubject = subject
			return nil
		})

	outcome := ch.Send(context.Background(), "budi@example.com", model.ActionSuccess, TemplateData{TenantName: "Budi", Month: "Januari"})

	assert.True(t, outcome.Attempted)
	assert.True(t, outcome.Success)
	assert.Equal(t, ChannelEmail, outcome.Channel)
	assert.Contains(t, gotSubject, "Diterima")
}

func TestEmailChannel_Send_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	ch := NewEmailChannel(clientMock)

	clientMock.EXPECT().Configured().Return(false)

	outcome := ch.Send(context.Background(), "budi@example.com", model.ActionSuccess, TemplateData{})

	assert.False(t, outcome.Attempted)
	assert.Equal(t, "Email service not configured", outcome.Error)
}

func TestEmailChannel_Send_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	ch := NewEmailChannel(clientMock)

	clientMock.EXPECT().Configured().Return(true)

	outcome := ch.Send(context.Background(), "not-an-email", model.ActionSuccess, TemplateData{})

	assert.False(t, outcome.Attempted)
	assert.Equal(t, "Invalid email address", outcome.Error)
}

func TestEmailChannel_Send_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientMock := mocks.NewMockemailClient(ctrl)
	ch := NewEmailChannel(clientMock)

	clientMock.EXPECT().Configured().Return(true)
	clientMock.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: auth failed"))

	outcome := ch.Send(context.Background(), "budi@example.com", model.ActionRejected, TemplateData{})

	assert.True(t, outcome.Attempted)
	assert.False(t, outcome.Success)
	assert.Equal(t, "smtp: auth failed", outcome.Error)
}

func TestEmailTemplate_Deterministic(t *testing.T) {
	data := TemplateData{TenantName: "Budi", Month: "Januari", RoomNumber: "A1", AdminNotes: "ok"}

	s1, t1, h1 := EmailTemplate(EmailPaymentRejected, data)
	s2, t2, h2 := EmailTemplate(EmailPaymentRejected, data)

	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, h1, h2)
	assert.Contains(t, t1, "Budi")
	assert.Contains(t, h1, "Januari")
}
