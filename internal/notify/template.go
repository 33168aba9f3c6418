package notify

import (
	"fmt"
	"strings"

	"github.com/kostsaya/kost-manager/internal/model"
)

// TemplateData carries the tenant-facing fields rendered into notification
// messages. Values reflect the contact identity resolved before the status
// transition and are immutable for the duration of a dispatch.
type TemplateData struct {
	TenantName string
	Month      string
	RoomNumber string
	AdminNotes string
	PaymentURL string
}

// EmailKind selects an email template.
type EmailKind string

const (
	EmailPaymentAccepted  EmailKind = "payment_accepted"
	EmailPaymentRejected  EmailKind = "payment_rejected"
	EmailPaymentSubmitted EmailKind = "payment_submitted"
)

// KindForAction maps a verification action to its email template.
func KindForAction(action model.VerificationAction) EmailKind {
	if action == model.ActionSuccess {
		return EmailPaymentAccepted
	}
	return EmailPaymentRejected
}

// WhatsAppText renders the WhatsApp message body for a verification action.
func WhatsAppText(action model.VerificationAction, data TemplateData) string {
	var b strings.Builder

	if action == model.ActionSuccess {
		b.WriteString("✅ *PEMBAYARAN DITERIMA*\n\n")
		fmt.Fprintf(&b, "Halo *%s*,\n\n", data.TenantName)
		fmt.Fprintf(&b, "Pembayaran kost untuk bulan *%s* telah *DITERIMA*!\n", data.Month)
		if data.RoomNumber != "" {
			fmt.Fprintf(&b, "\n🏠 Kamar: *%s*\n", data.RoomNumber)
		}
		if data.AdminNotes != "" {
			fmt.Fprintf(&b, "\nCatatan: %s\n", data.AdminNotes)
		}
		b.WriteString("\nTerima kasih atas pembayaran tepat waktu! 🙏\n\n_— Kost Pak Trisno —_")
		return b.String()
	}

	b.WriteString("❌ *PEMBAYARAN DITOLAK*\n\n")
	fmt.Fprintf(&b, "Halo *%s*,\n\n", data.TenantName)
	fmt.Fprintf(&b, "Pembayaran kost untuk bulan *%s* *DITOLAK*.\n", data.Month)
	if data.AdminNotes != "" {
		fmt.Fprintf(&b, "\nAlasan: %s\n", data.AdminNotes)
	}
	if data.PaymentURL != "" {
		fmt.Fprintf(&b, "\nSilakan upload ulang bukti yang lebih jelas di:\n%s\n", data.PaymentURL)
	}
	b.WriteString("\n_— Kost Pak Trisno —_")
	return b.String()
}

// EmailTemplate renders subject, plain-text and HTML bodies for the given
// template kind. Rendering is deterministic: same kind and data, same output.
func EmailTemplate(kind EmailKind, data TemplateData) (subject, text, html string) {
	switch kind {
	case EmailPaymentAccepted:
		subject = "✅ Pembayaran Diterima - Kost Pak Trisno"

		var t strings.Builder
		fmt.Fprintf(&t, "PEMBAYARAN DITERIMA\n\nHalo %s,\n\nPembayaran berhasil diverifikasi!\n\n", data.TenantName)
		fmt.Fprintf(&t, "Detail:\n• Nama: %s\n• Bulan: %s\n", data.TenantName, data.Month)
		if data.RoomNumber != "" {
			fmt.Fprintf(&t, "• Kamar: %s\n", data.RoomNumber)
		}
		t.WriteString("• Status: LUNAS\n")
		if data.AdminNotes != "" {
			fmt.Fprintf(&t, "\nCatatan: %s\n", data.AdminNotes)
		}
		t.WriteString("\nTerima kasih!\n\nKost Pak Trisno")
		text = t.String()

		var h strings.Builder
		fmt.Fprintf(&h, "<h2>✅ Pembayaran Diterima</h2><p>Halo <strong>%s</strong>,</p>", data.TenantName)
		fmt.Fprintf(&h, "<p>Pembayaran untuk bulan <strong>%s</strong> telah diverifikasi.</p>", data.Month)
		if data.RoomNumber != "" {
			fmt.Fprintf(&h, "<p>Kamar: <strong>%s</strong></p>", data.RoomNumber)
		}
		if data.AdminNotes != "" {
			fmt.Fprintf(&h, "<p>Catatan admin: %s</p>", data.AdminNotes)
		}
		h.WriteString("<p>Terima kasih!<br>Kost Pak Trisno</p>")
		html = h.String()

	case EmailPaymentRejected:
		subject = "❌ Pembayaran Ditolak - Kost Pak Trisno"

		var t strings.Builder
		fmt.Fprintf(&t, "PEMBAYARAN DITOLAK\n\nHalo %s,\n\nMaaf, pembayaran untuk bulan %s ditolak.\n", data.TenantName, data.Month)
		if data.AdminNotes != "" {
			fmt.Fprintf(&t, "\nAlasan: %s\n", data.AdminNotes)
		}
		t.WriteString("\nLangkah selanjutnya:\n1. Pastikan bukti transfer jelas\n2. Cek nominal sesuai tagihan\n3. Upload ulang via website\n")
		if data.PaymentURL != "" {
			fmt.Fprintf(&t, "\n%s\n", data.PaymentURL)
		}
		text = t.String()

		var h strings.Builder
		fmt.Fprintf(&h, "<h2>❌ Pembayaran Ditolak</h2><p>Halo <strong>%s</strong>,</p>", data.TenantName)
		fmt.Fprintf(&h, "<p>Maaf, pembayaran untuk bulan <strong>%s</strong> belum dapat kami terima.</p>", data.Month)
		if data.AdminNotes != "" {
			fmt.Fprintf(&h, "<p>Alasan: %s</p>", data.AdminNotes)
		}
		h.WriteString("<p>Silakan upload ulang bukti transfer yang lebih jelas.</p>")
		html = h.String()

	case EmailPaymentSubmitted:
		subject = "📄 Bukti Transfer Diterima - Kost Pak Trisno"

		var t strings.Builder
		fmt.Fprintf(&t, "BUKTI TRANSFER DITERIMA\n\nHalo %s,\n\nBukti transfer untuk bulan %s berhasil diterima dan sedang diproses.\n", data.TenantName, data.Month)
		t.WriteString("\nStatus: PENDING\n\nAdmin akan memverifikasi dalam 1x24 jam.\n\nKost Pak Trisno")
		text = t.String()

		var h strings.Builder
		fmt.Fprintf(&h, "<h2>📄 Bukti Transfer Diterima</h2><p>Halo <strong>%s</strong>,</p>", data.TenantName)
		fmt.Fprintf(&h, "<p>Bukti transfer untuk bulan <strong>%s</strong> berhasil diterima dan sedang diproses.</p>", data.Month)
		h.WriteString("<p>Admin akan memverifikasi dalam 1x24 jam.</p>")
		html = h.String()
	}

	return subject, text, html
}
