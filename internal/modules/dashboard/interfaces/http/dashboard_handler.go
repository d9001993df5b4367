package http

import (
	"context"
	"net/http"

	"github.com/saransh1220/artist-console/internal/gateway/layout"
	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	mgmtApp "github.com/saransh1220/artist-console/internal/modules/management/application"
	mgmtDomain "github.com/saransh1220/artist-console/internal/modules/management/domain"
	resourceApp "github.com/saransh1220/artist-console/internal/modules/resource/application"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/validation"
	"github.com/saransh1220/artist-console/internal/shared/web"
	"go.uber.org/zap"
)

// Pages is the handler set of one management section
type Pages interface {
	List(w http.ResponseWriter, r *http.Request)
	New(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// HomeView is the content of the dashboard home page
type HomeView struct {
	Name  string
	Role  string
	Links []layout.NavItem
}

type DashboardHandler struct {
	service *resourceApp.Service
	render  *web.Renderer
	logger  *zap.Logger
	pages   map[domain.Kind]Pages
}

func NewDashboardHandler(service *resourceApp.Service, render *web.Renderer, logger *zap.Logger) *DashboardHandler {
	h := &DashboardHandler{
		service: service,
		render:  render,
		logger:  logger.Named("dashboard"),
	}
	h.pages = map[domain.Kind]Pages{
		domain.KindUser:    h.users(),
		domain.KindArtist:  h.artists(),
		domain.KindManager: h.managers(),
		domain.KindMusic:   h.songs(),
	}
	return h
}

// Pages returns the management pages of kind
func (h *DashboardHandler) Pages(kind domain.Kind) Pages {
	return h.pages[kind]
}

// Home renders the landing page with the caller's sections
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	state := authDomain.FromContext(r.Context()).State()
	view := HomeView{Name: state.DisplayName(), Links: layout.Navigation(state, r.URL.Path)}
	if state.Role != nil {
		view.Role = state.Role.Label()
	}
	h.render.Render(w, r, http.StatusOK, "home", "Dashboard", view)
}

func isAdmin(sess *authDomain.Session) bool {
	return role(sess) == authDomain.RoleSuperAdmin
}

func (h *DashboardHandler) users() *section[domain.User, UserForm] {
	users := h.service.Users
	return &section[domain.User, UserForm]{
		cfg:      mgmtApp.Users(),
		render:   h.render,
		logger:   h.logger,
		list:     users.List,
		parse:    parseUser,
		fromItem: userFromItem,
		blank:    func() UserForm { return UserForm{Role: string(authDomain.RoleArtist), IsActive: true} },
		validate: UserForm.validate,
		fields: func(_ context.Context, _ *authDomain.Session, f UserForm, editing bool) ([]web.Field, error) {
			return f.fields(editing), nil
		},
		create: func(ctx context.Context, sess *authDomain.Session, f UserForm) error {
			in := f.Account.create(authDomain.Role(f.Role))
			in.IsActive = f.IsActive
			_, err := users.Create(ctx, sess, in)
			return err
		},
		update: func(ctx context.Context, sess *authDomain.Session, id int, f UserForm) error {
			_, err := users.Update(ctx, sess, id, domain.UserUpdate{Email: f.Account.Email, IsActive: f.IsActive})
			return err
		},
		remove: users.Delete,
	}
}

func (h *DashboardHandler) artists() *section[domain.ArtistProfile, ArtistForm] {
	svc := h.service
	return &section[domain.ArtistProfile, ArtistForm]{
		cfg:    mgmtApp.Artists(),
		render: h.render,
		logger: h.logger,
		list:   svc.VisibleArtists,
		lookup: func(ctx context.Context, sess *authDomain.Session) (mgmtDomain.Lookup, error) {
			return svc.ManagerNames(ctx, sess)
		},
		parse:    parseArtist,
		fromItem: func(a domain.ArtistProfile) ArtistForm { return ArtistForm{Profile: artistProfileFromItem(a)} },
		blank:    func() ArtistForm { return ArtistForm{} },
		validate: ArtistForm.validate,
		fields: func(ctx context.Context, sess *authDomain.Session, f ArtistForm, editing bool) ([]web.Field, error) {
			var managers map[int]string
			if isAdmin(sess) {
				names, err := svc.ManagerNames(ctx, sess)
				if err != nil {
					return nil, err
				}
				managers = names
			}
			profile := f.Profile.fields(managers)
			if editing {
				return profile, nil
			}
			return append(f.Account.fields(), profile...), nil
		},
		create: func(ctx context.Context, sess *authDomain.Session, f ArtistForm) error {
			_, err := svc.EnlistArtist(ctx, sess, f.Account.create(authDomain.RoleArtist), f.Profile.input())
			return err
		},
		update: func(ctx context.Context, sess *authDomain.Session, id int, f ArtistForm) error {
			in := f.Profile.input()
			if !isAdmin(sess) {
				mine, err := svc.MyManagerProfile(ctx, sess)
				if err != nil {
					return err
				}
				if mine == nil {
					sess.Notify(authDomain.NoticeError, domain.ErrManagerProfileNotFound.Error())
					return domain.ErrManagerProfileNotFound
				}
				in.ManagerID = &mine.ID
			}
			_, err := svc.Artists.Update(ctx, sess, id, in)
			return err
		},
		remove: svc.Artists.Delete,
	}
}

func (h *DashboardHandler) managers() *section[domain.ManagerProfile, ManagerForm] {
	svc := h.service
	return &section[domain.ManagerProfile, ManagerForm]{
		cfg:      mgmtApp.Managers(),
		render:   h.render,
		logger:   h.logger,
		list:     svc.Managers.List,
		parse:    parseManager,
		fromItem: func(m domain.ManagerProfile) ManagerForm { return ManagerForm{Profile: managerProfileFromItem(m)} },
		blank:    func() ManagerForm { return ManagerForm{} },
		validate: ManagerForm.validate,
		fields: func(_ context.Context, _ *authDomain.Session, f ManagerForm, editing bool) ([]web.Field, error) {
			if editing {
				return f.Profile.fields(), nil
			}
			return append(f.Account.fields(), f.Profile.fields()...), nil
		},
		create: func(ctx context.Context, sess *authDomain.Session, f ManagerForm) error {
			_, err := svc.EnlistManager(ctx, sess, f.Account.create(authDomain.RoleArtistManager), f.Profile.input())
			return err
		},
		update: func(ctx context.Context, sess *authDomain.Session, id int, f ManagerForm) error {
			_, err := svc.Managers.Update(ctx, sess, id, f.Profile.input())
			return err
		},
		remove: svc.Managers.Delete,
	}
}

func (h *DashboardHandler) songs() *section[domain.Music, MusicForm] {
	svc := h.service
	artistChoices := func(ctx context.Context, sess *authDomain.Session) (map[int]string, error) {
		if !isAdmin(sess) {
			return nil, nil
		}
		return svc.ArtistNames(ctx, sess)
	}

	return &section[domain.Music, MusicForm]{
		cfg:    mgmtApp.Songs(),
		render: h.render,
		logger: h.logger,
		list:   svc.VisibleMusic,
		lookup: func(ctx context.Context, sess *authDomain.Session) (mgmtDomain.Lookup, error) {
			return svc.ArtistNames(ctx, sess)
		},
		parse:    parseMusic,
		fromItem: musicFromItem,
		blank:    func() MusicForm { return MusicForm{} },
		validate: func(f MusicForm, _ bool) validation.FieldErrors { return validation.Struct(f) },
		fields: func(ctx context.Context, sess *authDomain.Session, f MusicForm, _ bool) ([]web.Field, error) {
			artists, err := artistChoices(ctx, sess)
			if err != nil {
				return nil, err
			}
			return f.fields(artists), nil
		},
		create: func(ctx context.Context, sess *authDomain.Session, f MusicForm) error {
			if !isAdmin(sess) {
				_, err := svc.CreateMyMusic(ctx, sess, f.input())
				return err
			}
			if f.ArtistID == "" {
				return validation.FieldErrors{"created_by_id": "This field is required."}
			}
			_, err := svc.Songs.Create(ctx, sess, f.input())
			return err
		},
		update: func(ctx context.Context, sess *authDomain.Session, id int, f MusicForm) error {
			in := f.input()
			if !isAdmin(sess) {
				mine, err := svc.MyArtistProfile(ctx, sess)
				if err != nil {
					return err
				}
				if mine == nil {
					sess.Notify(authDomain.NoticeError, domain.ErrArtistProfileNotFound.Error())
					return domain.ErrArtistProfileNotFound
				}
				in.CreatedByID = mine.ID
			}
			_, err := svc.Songs.Update(ctx, sess, id, in)
			return err
		},
		remove: svc.Songs.Delete,
	}
}
