package intake

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ackBody is the fixed acknowledgment returned on every webhook POST that
// reaches the handler. The provider treats any non-200 as "retry", so this
// response never varies with the internal outcome.
const ackBody = "OK"

// Handler exposes the webhook endpoints for the intake pipeline.
type Handler struct {
	pipeline    *Pipeline
	verifyToken string
}

// NewHandler creates a webhook handler bound to the given pipeline and the
// pre-shared subscription verification token.
func NewHandler(pipeline *Pipeline, verifyToken string) *Handler {
	return &Handler{pipeline: pipeline, verifyToken: verifyToken}
}

// HandleWebhook processes an inbound leadgen notification.
// POST /api/v1/webhooks/meta/leads
//
// Always responds 200 "OK": malformed bodies, unresolved campaigns, and
// internal failures are acknowledged exactly like successful captures.
func (h *Handler) HandleWebhook(c *gin.Context) {
	var payload WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		// Unparseable body: treated as a malformed envelope, still acked.
		c.String(http.StatusOK, ackBody)
		return
	}

	h.pipeline.Process(c.Request.Context(), payload)

	c.String(http.StatusOK, ackBody)
}

// HandleVerify answers the subscription handshake.
// GET /api/v1/webhooks/meta/leads
//
// Echoes the challenge verbatim only when the mode is "subscribe" and the
// supplied token exactly matches the configured secret.
func (h *Handler) HandleVerify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) == 1 {
		c.String(http.StatusOK, challenge)
		return
	}

	c.String(http.StatusForbidden, "Forbidden")
}
