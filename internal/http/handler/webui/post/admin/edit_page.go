package admin

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/service"
	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/handler/webui/post/admin/component"
	"github.com/pkg/errors"
)

func (h *Handler) getPostEditPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillPostEditPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, common.FromStoreError(errors.WithStack(err), backToAdmin(r.Context())))
		return
	}

	editPage := component.PostEditPage(*vmodel)

	templ.Handler(editPage).ServeHTTP(w, r)
}

func (h *Handler) handlePostSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mode, err := model.ParseEditMode(r.PathValue("slug"))
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	submission := service.PostSubmission{
		Intent:   r.PostFormValue("intent"),
		Title:    r.PostFormValue("title"),
		Slug:     r.PostFormValue("slug"),
		Markdown: r.PostFormValue("markdown"),
	}

	result, err := h.postManager.Submit(ctx, mode, submission)
	if err != nil {
		common.HandleError(w, r, common.FromStoreError(errors.WithStack(err), backToAdmin(ctx)))
		return
	}

	if !result.Done() {
		vmodel := &component.PostEditPageVModel{
			Title:    submission.Title,
			Slug:     submission.Slug,
			Markdown: submission.Markdown,
			Errors:   *result.FieldErrors,
		}

		fillPostEditPageVModelMode(ctx, vmodel, mode)
		vmodel.Navbar = getNavbarVModel(ctx)

		editPage := component.PostEditPage(*vmodel)

		templ.Handler(editPage).ServeHTTP(w, r)
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/posts/admin/"))
	http.Redirect(w, r, string(redirectURL), http.StatusFound)
}

func (h *Handler) fillPostEditPageViewModel(r *http.Request) (*component.PostEditPageVModel, error) {
	vmodel := &component.PostEditPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillPostEditPageVModelPost,
		h.fillPostEditPageVModelNavbar,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillPostEditPageVModelPost(ctx context.Context, vmodel *component.PostEditPageVModel, r *http.Request) error {
	mode, err := model.ParseEditMode(r.PathValue("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	fillPostEditPageVModelMode(ctx, vmodel, mode)

	if mode.IsNew() {
		return nil
	}

	post, err := h.postManager.GetPost(ctx, mode.Slug())
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Title = post.Title()
	vmodel.Slug = string(post.Slug())
	vmodel.Markdown = post.Markdown()

	return nil
}

func (h *Handler) fillPostEditPageVModelNavbar(ctx context.Context, vmodel *component.PostEditPageVModel, r *http.Request) error {
	vmodel.Navbar = getNavbarVModel(ctx)
	return nil
}

func fillPostEditPageVModelMode(ctx context.Context, vmodel *component.PostEditPageVModel, mode model.EditMode) {
	vmodel.IsNew = mode.IsNew()
	vmodel.ActionURL = commonComp.AdminPostURL(ctx, mode)
	vmodel.ListURL = commonComp.BaseURL(ctx, commonComp.WithPath("/posts/admin/"))
}

func backToAdmin(ctx context.Context) commonComp.LinkItem {
	return commonComp.LinkItem{
		URL:   commonComp.BaseURL(ctx, commonComp.WithPath("/posts/admin/")),
		Label: "Back to posts administration",
	}
}
