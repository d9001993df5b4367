package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	mgmtApp "github.com/saransh1220/artist-console/internal/modules/management/application"
	mgmtDomain "github.com/saransh1220/artist-console/internal/modules/management/domain"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"github.com/saransh1220/artist-console/internal/shared/validation"
	"github.com/saransh1220/artist-console/internal/shared/web"
	"go.uber.org/zap"
)

// TableView is the content of the table page
type TableView struct {
	Table mgmtApp.Table
	Base  string
}

// section serves the list, create, edit and delete pages of one kind. The
// per-kind behaviour is plugged in as functions; F is the form type.
type section[T mgmtDomain.Item, F any] struct {
	cfg    mgmtApp.Config[T]
	render *web.Renderer
	logger *zap.Logger

	list     func(ctx context.Context, sess *authDomain.Session) ([]T, error)
	lookup   func(ctx context.Context, sess *authDomain.Session) (mgmtDomain.Lookup, error)
	parse    func(r *http.Request) F
	fromItem func(item T) F
	blank    func() F
	validate func(form F, editing bool) validation.FieldErrors
	fields   func(ctx context.Context, sess *authDomain.Session, form F, editing bool) ([]web.Field, error)
	create   func(ctx context.Context, sess *authDomain.Session, form F) error
	update   func(ctx context.Context, sess *authDomain.Session, id int, form F) error
	remove   func(ctx context.Context, sess *authDomain.Session, id int) error
}

func (s *section[T, F]) base() string {
	return "/dashboard/" + s.cfg.Kind.Segment()
}

func role(sess *authDomain.Session) authDomain.Role {
	r, _ := sess.Role()
	return r
}

// List renders the table, filtered by ?q=
func (s *section[T, F]) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)

	items, err := s.list(ctx, sess)
	if err != nil {
		s.failed(w, r, err)
		return
	}
	var lookup mgmtDomain.Lookup
	if s.lookup != nil {
		if lookup, err = s.lookup(ctx, sess); err != nil {
			s.failed(w, r, err)
			return
		}
	}
	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return
	}

	table := mgmtApp.BuildTable(s.cfg, items, lookup, role(sess), r.URL.Query().Get("q"))
	s.render.Render(w, r, http.StatusOK, "table", s.cfg.Title, TableView{Table: table, Base: s.base()})
}

// New renders an empty create form
func (s *section[T, F]) New(w http.ResponseWriter, r *http.Request) {
	sess := authDomain.FromContext(r.Context())
	if !mgmtDomain.CanCreate(role(sess), s.cfg.Kind) {
		s.render.Denied(w, r)
		return
	}
	s.form(w, r, http.StatusOK, s.blank(), nil, 0)
}

// Create validates and submits the create form
func (s *section[T, F]) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)
	if !mgmtDomain.CanCreate(role(sess), s.cfg.Kind) {
		s.render.Denied(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.render.Error(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}

	form := s.parse(r)
	if errs := s.validate(form, false); errs != nil {
		s.form(w, r, http.StatusUnprocessableEntity, form, errs, 0)
		return
	}
	s.finish(w, r, s.create(ctx, sess, form), form, 0, "created")
}

// Edit renders the edit form of a visible item
func (s *section[T, F]) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)
	if !mgmtDomain.Permit(role(sess), s.cfg.Kind).Edit {
		s.render.Denied(w, r)
		return
	}

	id, item, ok := s.target(w, r)
	if !ok {
		return
	}
	if item == nil {
		s.render.Error(w, r, http.StatusNotFound, s.cfg.Singular+" not found.")
		return
	}
	s.form(w, r, http.StatusOK, s.fromItem(*item), nil, id)
}

// Update validates and submits the edit form
func (s *section[T, F]) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)
	if !mgmtDomain.Permit(role(sess), s.cfg.Kind).Edit {
		s.render.Denied(w, r)
		return
	}

	id, item, ok := s.target(w, r)
	if !ok {
		return
	}
	if item == nil {
		s.render.Error(w, r, http.StatusNotFound, s.cfg.Singular+" not found.")
		return
	}
	if err := r.ParseForm(); err != nil {
		s.render.Error(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}

	form := s.parse(r)
	if errs := s.validate(form, true); errs != nil {
		s.form(w, r, http.StatusUnprocessableEntity, form, errs, id)
		return
	}
	s.finish(w, r, s.update(ctx, sess, id, form), form, id, "updated")
}

// Delete removes a visible item. An item that is already gone is reported,
// not treated as a failure.
func (s *section[T, F]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)
	if !mgmtDomain.Permit(role(sess), s.cfg.Kind).Delete {
		s.render.Denied(w, r)
		return
	}

	id, item, ok := s.target(w, r)
	if !ok {
		return
	}
	if item == nil {
		sess.Notify(authDomain.NoticeInfo, s.cfg.Singular+" was already deleted.")
		web.Redirect(w, r, s.base())
		return
	}

	if err := s.remove(ctx, sess, id); err != nil {
		s.logger.Warn("delete failed", zap.String("resource", string(s.cfg.Kind)), zap.Int("id", id), zap.Error(err))
		web.Redirect(w, r, s.base())
		return
	}
	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return
	}
	sess.Notify(authDomain.NoticeSuccess, s.cfg.Singular+" deleted.")
	web.Redirect(w, r, s.base())
}

// target resolves {id} against the caller's visible items. ok is false when
// a response was already written.
func (s *section[T, F]) target(w http.ResponseWriter, r *http.Request) (int, *T, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		s.render.Error(w, r, http.StatusNotFound, s.cfg.Singular+" not found.")
		return 0, nil, false
	}

	sess := authDomain.FromContext(r.Context())
	items, err := s.list(r.Context(), sess)
	if err != nil {
		s.failed(w, r, err)
		return 0, nil, false
	}
	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return 0, nil, false
	}
	for i := range items {
		if items[i].ItemID() == id {
			return id, &items[i], true
		}
	}
	return id, nil, true
}

// finish turns a mutation result into a redirect or a re-rendered form
func (s *section[T, F]) finish(w http.ResponseWriter, r *http.Request, err error, form F, id int, verb string) {
	sess := authDomain.FromContext(r.Context())
	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return
	}
	if err == nil {
		sess.Notify(authDomain.NoticeSuccess, s.cfg.Singular+" "+verb+".")
		web.Redirect(w, r, s.base())
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		s.render.Error(w, r, http.StatusNotFound, s.cfg.Singular+" not found.")
		return
	}

	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		s.form(w, r, http.StatusUnprocessableEntity, form, fieldErrs, id)
		return
	}

	s.logger.Info("mutation rejected",
		zap.String("resource", string(s.cfg.Kind)),
		zap.String("action", verb),
		zap.Error(err))
	s.form(w, r, failureStatus(err), form, nil, id)
}

// form renders the create (id 0) or edit form
func (s *section[T, F]) form(w http.ResponseWriter, r *http.Request, status int, form F, errs validation.FieldErrors, id int) {
	ctx := r.Context()
	editing := id != 0

	fields, err := s.fields(ctx, authDomain.FromContext(ctx), form, editing)
	if err != nil {
		s.failed(w, r, err)
		return
	}

	view := web.Form{
		Heading: s.cfg.CreateLabel,
		Action:  s.base(),
		Submit:  "Create",
		Cancel:  s.base(),
		Fields:  fields,
	}
	if editing {
		view.Heading = "Edit " + s.cfg.Singular
		view.Action = s.base() + "/" + strconv.Itoa(id)
		view.Submit = "Save"
	}
	s.render.Render(w, r, status, "form", view.Heading, view.WithErrors(errs))
}

// failed renders a page for a read that could not complete
func (s *section[T, F]) failed(w http.ResponseWriter, r *http.Request, err error) {
	if authDomain.FromContext(r.Context()).Cleared() {
		web.Redirect(w, r, "/login")
		return
	}
	s.logger.Warn("page load failed", zap.String("resource", string(s.cfg.Kind)), zap.Error(err))
	s.render.Error(w, r, failureStatus(err), "")
}

func failureStatus(err error) int {
	if errors.Is(err, restapi.ErrTransport) {
		return http.StatusBadGateway
	}
	if status := restapi.StatusOf(err); status >= 400 && status < 500 {
		return http.StatusUnprocessableEntity
	}
	if restapi.StatusOf(err) >= 500 {
		return http.StatusBadGateway
	}
	return http.StatusUnprocessableEntity
}
