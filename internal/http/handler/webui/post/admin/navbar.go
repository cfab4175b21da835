package admin

import (
	"context"

	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/middleware/authn"
)

func getNavbarVModel(ctx context.Context) commonComp.NavbarVModel {
	navbar := commonComp.NavbarVModel{
		IsAdmin: true,
	}

	if user := authn.ContextUser(ctx); user != nil {
		navbar.UserEmail = user.Email
	}

	return navbar
}
