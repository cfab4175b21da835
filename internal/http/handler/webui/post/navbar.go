package post

import (
	"context"

	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/bornholm/billet/internal/http/middleware/authz"
	"github.com/pkg/errors"
)

func (h *Handler) getNavbarVModel(ctx context.Context) (commonComp.NavbarVModel, error) {
	user := authn.ContextUser(ctx)
	if user == nil {
		return commonComp.NavbarVModel{}, nil
	}

	isAdmin, err := authz.Assert(ctx, user, h.isAdmin)
	if err != nil {
		return commonComp.NavbarVModel{}, errors.WithStack(err)
	}

	return commonComp.NavbarVModel{
		UserEmail: user.Email,
		IsAdmin:   isAdmin,
	}, nil
}
