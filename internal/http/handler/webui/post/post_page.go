package post

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/handler/webui/post/component"
	"github.com/pkg/errors"
)

func (h *Handler) getPostPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillPostPageViewModel(r)
	if err != nil {
		backToPosts := commonComp.LinkItem{
			URL:   commonComp.BaseURL(r.Context(), commonComp.WithPath("/posts/")),
			Label: "All posts",
		}

		common.HandleError(w, r, common.FromStoreError(errors.WithStack(err), backToPosts))
		return
	}

	postPage := component.PostPage(*vmodel)

	templ.Handler(postPage).ServeHTTP(w, r)
}

func (h *Handler) fillPostPageViewModel(r *http.Request) (*component.PostPageVModel, error) {
	vmodel := &component.PostPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillPostPageVModelPost,
		h.fillPostPageVModelNavbar,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillPostPageVModelPost(ctx context.Context, vmodel *component.PostPageVModel, r *http.Request) error {
	slug := model.PostSlug(r.PathValue("slug"))
	if slug == "" {
		return errors.New("missing slug path value")
	}

	post, err := h.postManager.GetRenderedPost(ctx, slug)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Slug = slug
	vmodel.Title = post.Title
	vmodel.HTML = post.HTML
	vmodel.Lang = post.Lang

	return nil
}

func (h *Handler) fillPostPageVModelNavbar(ctx context.Context, vmodel *component.PostPageVModel, r *http.Request) error {
	navbar, err := h.getNavbarVModel(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Navbar = navbar

	if navbar.IsAdmin {
		vmodel.EditURL = commonComp.AdminPostURL(ctx, model.EditPostMode(vmodel.Slug))
	}

	return nil
}
