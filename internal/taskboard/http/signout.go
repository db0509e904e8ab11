package http

import (
	"net/http"
)

// SignOutHandler acknowledges a sign-out. Session tokens are stateless, so
// there is nothing server-side to revoke; the client discards its token.
//
//	@Summary		Sign out
//	@Description	Ends the session. The token itself remains valid until expiry; clients must discard it.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Signed out"
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/auth/signout [post].
func SignOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}
