package post

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/handler/webui/post/component"
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
		item := component.PostItem{
			Title:     p.Title,
			URL:       commonComp.PostURL(ctx, p.Slug),
			CreatedAt: p.CreatedAt,
		}

		if !p.CreatedAt.IsZero() {
			item.Age = humanize.Time(p.CreatedAt)
		}

		vmodel.Posts = append(vmodel.Posts, item)
	}

	return nil
}

func (h *Handler) fillPostListPageVModelNavbar(ctx context.Context, vmodel *component.PostListPageVModel, r *http.Request) error {
	navbar, err := h.getNavbarVModel(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Navbar = navbar

	if navbar.IsAdmin {
		vmodel.AdminURL = commonComp.BaseURL(ctx, commonComp.WithPath("/posts/admin/"))
	}

	return nil
}
