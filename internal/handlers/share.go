package handlers

import (
	"net/http"

	"github.com/skip2/go-qrcode"
)

// handleShareQR returns a PNG QR code of the catalog URL so the grid can be
// opened on a phone. Falls back to the request host when no share URL was
// configured at startup.
func (h *Handlers) handleShareQR(w http.ResponseWriter, r *http.Request) {
	target := h.shareURL
	if target == "" {
		target = "http://" + r.Host + "/"
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		respondError(w, InternalError(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
