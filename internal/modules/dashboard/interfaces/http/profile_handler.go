package http

import (
	"errors"
	"net/http"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	mgmtDomain "github.com/saransh1220/artist-console/internal/modules/management/domain"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/validation"
	"github.com/saransh1220/artist-console/internal/shared/web"
	"go.uber.org/zap"
)

const profilePath = "/dashboard/profile"

// Detail is one label/value line of the profile page
type Detail struct {
	Label string
	Value string
}

// ProfileView is the content of the profile page
type ProfileView struct {
	Heading string
	Exists  bool
	Details []Detail
}

// profile is the caller's own profile, artist or manager, loaded once
type profile struct {
	artist  *domain.ArtistProfile
	manager *domain.ManagerProfile
}

func (p profile) exists() bool { return p.artist != nil || p.manager != nil }

func (p profile) id() int {
	if p.artist != nil {
		return p.artist.ID
	}
	if p.manager != nil {
		return p.manager.ID
	}
	return 0
}

func (h *DashboardHandler) loadProfile(w http.ResponseWriter, r *http.Request) (profile, bool) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)

	var p profile
	var err error
	switch role(sess) {
	case authDomain.RoleArtist:
		p.artist, err = h.service.MyArtistProfile(ctx, sess)
	case authDomain.RoleArtistManager:
		p.manager, err = h.service.MyManagerProfile(ctx, sess)
	}
	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return p, false
	}
	if err != nil {
		h.logger.Warn("profile load failed", zap.Error(err))
		h.render.Error(w, r, failureStatus(err), "")
		return p, false
	}
	return p, true
}

func details(p profile) []Detail {
	cell := mgmtDomain.FormatCell
	if p.artist != nil {
		f := p.artist.Fields()
		return []Detail{
			{"Name", cell("name", f["name"])},
			{"Date of birth", cell("date_of_birth", f["date_of_birth"])},
			{"Gender", cell("gender", f["gender"])},
			{"Address", cell("address", f["address"])},
			{"First release year", cell("first_release_year", f["first_release_year"])},
			{"Albums released", cell("no_of_albums_released", f["no_of_albums_released"])},
		}
	}
	if p.manager != nil {
		f := p.manager.Fields()
		return []Detail{
			{"Name", cell("name", f["name"])},
			{"Company", cell("company_name", f["company_name"])},
			{"Company email", cell("company_email", f["company_email"])},
			{"Company phone", cell("company_phone", f["company_phone"])},
			{"Gender", cell("gender", f["gender"])},
			{"Address", cell("address", f["address"])},
			{"Date of birth", cell("date_of_birth", f["date_of_birth"])},
		}
	}
	return nil
}

// Profile shows the caller's profile or offers to create one
func (h *DashboardHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	h.render.Render(w, r, http.StatusOK, "profile", "My Profile", ProfileView{
		Heading: "My Profile",
		Exists:  p.exists(),
		Details: details(p),
	})
}

// NewProfile renders the profile create form
func (h *DashboardHandler) NewProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	if p.exists() {
		web.Redirect(w, r, profilePath+"/edit")
		return
	}
	h.profileForm(w, r, http.StatusOK, nil, parsedProfile{}, false)
}

// EditProfile renders the profile edit form
func (h *DashboardHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	if !p.exists() {
		web.Redirect(w, r, profilePath+"/new")
		return
	}

	var form parsedProfile
	if p.artist != nil {
		form.artist = artistProfileFromItem(*p.artist)
	} else {
		form.manager = managerProfileFromItem(*p.manager)
	}
	h.profileForm(w, r, http.StatusOK, nil, form, true)
}

// SaveProfile creates or updates the caller's profile
func (h *DashboardHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}

	uid, _ := sess.UserID()
	form := parsedProfile{artist: parseArtistProfile(r), manager: parseManagerProfile(r)}
	artist := role(sess) == authDomain.RoleArtist

	var errs validation.FieldErrors
	if artist {
		errs = validation.Struct(form.artist)
	} else {
		errs = validation.Struct(form.manager)
	}
	if errs != nil {
		h.profileForm(w, r, http.StatusUnprocessableEntity, errs, form, p.exists())
		return
	}

	var err error
	switch {
	case artist:
		in := form.artist.input()
		in.UserID = uid
		if p.artist != nil {
			in.ManagerID = p.artist.ManagerID
			_, err = h.service.Artists.Update(ctx, sess, p.id(), in)
		} else {
			_, err = h.service.Artists.Create(ctx, sess, in)
		}
	default:
		in := form.manager.input()
		in.UserID = uid
		if p.manager != nil {
			_, err = h.service.Managers.Update(ctx, sess, p.id(), in)
		} else {
			_, err = h.service.Managers.Create(ctx, sess, in)
		}
	}

	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		h.render.Error(w, r, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		h.logger.Info("profile save rejected", zap.Error(err))
		h.profileForm(w, r, failureStatus(err), nil, form, p.exists())
		return
	}
	sess.Notify(authDomain.NoticeSuccess, "Profile saved.")
	web.Redirect(w, r, profilePath)
}

// DeleteProfile removes the caller's own profile
func (h *DashboardHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := authDomain.FromContext(ctx)
	p, ok := h.loadProfile(w, r)
	if !ok {
		return
	}
	if !p.exists() {
		web.Redirect(w, r, profilePath)
		return
	}

	var err error
	if p.artist != nil {
		err = h.service.Artists.Delete(ctx, sess, p.id())
	} else {
		err = h.service.Managers.Delete(ctx, sess, p.id())
	}
	if sess.Cleared() {
		web.Redirect(w, r, "/login")
		return
	}
	if err != nil {
		h.logger.Warn("profile delete failed", zap.Int("id", p.id()), zap.Error(err))
	} else {
		sess.Notify(authDomain.NoticeSuccess, "Profile deleted.")
	}
	web.Redirect(w, r, profilePath)
}

// parsedProfile carries both profile shapes; only the caller's role's one
// is used
type parsedProfile struct {
	artist  ArtistProfileForm
	manager ManagerProfileForm
}

func (h *DashboardHandler) profileForm(w http.ResponseWriter, r *http.Request, status int, errs validation.FieldErrors, form parsedProfile, editing bool) {
	sess := authDomain.FromContext(r.Context())

	view := web.Form{
		Heading: "Create profile",
		Action:  profilePath,
		Submit:  "Create",
		Cancel:  profilePath,
	}
	if editing {
		view.Heading = "Edit profile"
		view.Submit = "Save"
		view.DeleteAction = profilePath + "/delete"
	}
	if role(sess) == authDomain.RoleArtist {
		view.Fields = form.artist.fields(nil)
	} else {
		view.Fields = form.manager.fields()
	}
	h.render.Render(w, r, status, "form", view.Heading, view.WithErrors(errs))
}
