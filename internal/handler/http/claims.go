package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
)

// currentUser reads the authenticated identity from the verified token.
func currentUser(r *http.Request) (userID string, role user.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", false
	}

	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), true
}

// canActFor reports whether the caller may act on target's data: everyone on
// themselves, managers and administrators on anyone.
func canActFor(callerID string, role user.Role, targetID string) bool {
	if callerID == targetID {
		return true
	}
	return role == user.RoleManager || role == user.RoleAdministrator
}
