package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-events/gateway/internal/domain"
)

// Decision is the single terminal outcome of one gate evaluation.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionDeniedToLogin
	DecisionDeniedToHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionDeniedToLogin:
		return "denied_to_login"
	case DecisionDeniedToHome:
		return "denied_to_home"
	}

	return "unknown"
}

type ApprovalAPI interface {
	MyWhitelistRequest(ctx context.Context) (domain.WhitelistRequest, bool, error)
}

// AccessService decides whether a session may enter a protected surface.
type AccessService struct {
	approvals ApprovalAPI
}

func NewAccessService(approvals ApprovalAPI) *AccessService {
	return &AccessService{
		approvals: approvals,
	}
}

// CanAccessUserSurface needs authentication only.
func (s *AccessService) CanAccessUserSurface(session *domain.Session) Decision {
	if !session.IsLoggedIn() {
		return DecisionDeniedToLogin
	}

	return DecisionAllowed
}

// CanAccessAdminSurface allows admins outright and otherwise re-queries the
// caller's whitelist request on every evaluation, so a freshly approved
// organizer gets in without re-logging. A failed lookup is an authorization
// denial, never an authentication failure: the caller is sent home, not to
// login, and the gate always resolves.
func (s *AccessService) CanAccessAdminSurface(ctx context.Context, session *domain.Session) Decision {
	if !session.IsLoggedIn() {
		return DecisionDeniedToLogin
	}

	if session.User.IsAdmin() {
		return DecisionAllowed
	}

	request, found, err := s.approvals.MyWhitelistRequest(ctx)
	if err != nil {
		zap.L().Warn("whitelist lookup failed, denying admin surface",
			zap.String("user_id", session.User.ID),
			zap.Error(err))

		return DecisionDeniedToHome
	}

	if found && request.Status == domain.WhitelistApproved {
		return DecisionAllowed
	}

	return DecisionDeniedToHome
}

// CanAccessOrganizerSurface trusts the approval flag cached on the session
// user instead of a lookup, trading a round trip for staleness until the
// next login.
func (s *AccessService) CanAccessOrganizerSurface(session *domain.Session) Decision {
	if !session.IsLoggedIn() {
		return DecisionDeniedToLogin
	}

	if session.User.IsAdmin() {
		return DecisionAllowed
	}

	if session.User.Role == domain.RoleOrganizer && session.User.IsApproved {
		return DecisionAllowed
	}

	return DecisionDeniedToHome
}
