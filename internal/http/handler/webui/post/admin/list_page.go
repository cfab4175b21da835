package admin

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/handler/webui/post/admin/component"
	"github.com/pkg/errors"
)

func (h *Handler) getPostListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillPostListPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listPage := component.PostListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) fillPostListPageViewModel(r *http.Request) (*component.PostListPageVModel, error) {
	vmodel := &component.PostListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillPostListPageVModelPosts,
		h.fillPostListPageVModelNavbar,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillPostListPageVModelPosts(ctx context.Context, vmodel *component.PostListPageVModel, r *http.Request) error {
	headers, err := h.postManager.ListPostHeaders(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Posts = make([]component.PostItem, 0, len(headers))

	for _, p := range headers {
		vmodel.Posts = append(vmodel.Posts, component.PostItem{
			Title:   p.Title,
			Slug:    string(p.Slug),
			EditURL: commonComp.AdminPostURL(ctx, model.EditPostMode(p.Slug)),
			ViewURL: commonComp.PostURL(ctx, p.Slug),
		})
	}

	vmodel.NewURL = commonComp.AdminPostURL(ctx, model.NewPostMode())

	return nil
}

func (h *Handler) fillPostListPageVModelNavbar(ctx context.Context, vmodel *component.PostListPageVModel, r *http.Request) error {
	vmodel.Navbar = getNavbarVModel(ctx)
	return nil
}
