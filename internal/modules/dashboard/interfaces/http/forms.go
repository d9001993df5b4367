package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/validation"
	"github.com/saransh1220/artist-console/internal/shared/web"
)

func value(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

func checked(r *http.Request, name string) bool {
	v := r.PostFormValue(name)
	return v == "true" || v == "on"
}

// optional maps an empty input to nil
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func number(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// dateInput trims a backend timestamp to what a date input accepts
func dateInput(p *string) string {
	s := text(p)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func genderOptions() []web.Option {
	return web.Options(domain.Genders...)
}

func genreOptions() []web.Option {
	out := make([]web.Option, 0, len(domain.Genres))
	for _, g := range domain.Genres {
		out = append(out, web.Option{Value: string(g), Label: string(g)})
	}
	return out
}

func lookupOptions(names map[int]string) []web.Option {
	out := make([]web.Option, 0, len(names))
	for id, name := range names {
		out = append(out, web.Option{Value: strconv.Itoa(id), Label: name})
	}
	slices.SortFunc(out, func(a, b web.Option) int { return strings.Compare(a.Label, b.Label) })
	return out
}

// AccountForm is the login part of every create form
type AccountForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func parseAccount(r *http.Request) AccountForm {
	return AccountForm{
		Email:    value(r, "email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm_password"),
	}
}

func (f AccountForm) fields() []web.Field {
	return []web.Field{
		{Name: "email", Label: "Email", Type: "email", Value: f.Email, Required: true},
		{Name: "password", Label: "Password", Type: "password", Required: true},
		{Name: "confirm_password", Label: "Confirm password", Type: "password", Required: true},
	}
}

func (f AccountForm) create(role authDomain.Role) domain.UserCreate {
	return domain.UserCreate{Email: f.Email, Password: f.Password, Role: string(role), IsActive: true}
}

// UserForm creates or edits an account. Role is fixed once created.
type UserForm struct {
	Account  AccountForm
	Role     string `form:"role" validate:"required,oneof=super_admin artist_manager artist"`
	IsActive bool   `form:"is_active"`
}

type userEdit struct {
	Email string `form:"email" validate:"required,email"`
}

func parseUser(r *http.Request) UserForm {
	return UserForm{Account: parseAccount(r), Role: value(r, "role"), IsActive: checked(r, "is_active")}
}

func userFromItem(u domain.User) UserForm {
	return UserForm{Account: AccountForm{Email: u.Email}, Role: u.Role, IsActive: u.IsActive}
}

func (f UserForm) validate(editing bool) validation.FieldErrors {
	if editing {
		return validation.Struct(userEdit{Email: f.Account.Email})
	}
	return validation.Struct(f)
}

func (f UserForm) fields(editing bool) []web.Field {
	roles := make([]web.Option, 0, len(authDomain.Roles))
	for _, r := range authDomain.Roles {
		roles = append(roles, web.Option{Value: string(r), Label: r.Label()})
	}

	var fields []web.Field
	if editing {
		fields = append(fields, web.Field{Name: "email", Label: "Email", Type: "email", Value: f.Account.Email, Required: true})
	} else {
		fields = f.Account.fields()
	}
	return append(fields,
		web.Field{Name: "role", Label: "Role", Type: "select", Value: f.Role, Options: roles, Disabled: editing, Required: !editing},
		web.Field{Name: "is_active", Label: "Active", Type: "checkbox", Checked: f.IsActive},
	)
}

// ArtistProfileForm holds the editable artist profile fields
type ArtistProfileForm struct {
	Name             string `form:"name" validate:"required,max=255"`
	DateOfBirth      string `form:"date_of_birth" validate:"omitempty,isodate"`
	Gender           string `form:"gender" validate:"omitempty,oneof=male female other"`
	Address          string `form:"address" validate:"max=255"`
	FirstReleaseYear string `form:"first_release_year" validate:"omitempty,year"`
	Albums           string `form:"no_of_albums_released" validate:"omitempty,count"`
	ManagerID        string `form:"manager_id_id" validate:"omitempty,numeric"`
}

func parseArtistProfile(r *http.Request) ArtistProfileForm {
	return ArtistProfileForm{
		Name:             value(r, "name"),
		DateOfBirth:      value(r, "date_of_birth"),
		Gender:           value(r, "gender"),
		Address:          value(r, "address"),
		FirstReleaseYear: value(r, "first_release_year"),
		Albums:           value(r, "no_of_albums_released"),
		ManagerID:        value(r, "manager_id_id"),
	}
}

func artistProfileFromItem(a domain.ArtistProfile) ArtistProfileForm {
	return ArtistProfileForm{
		Name:             a.Name,
		DateOfBirth:      dateInput(a.DateOfBirth),
		Gender:           text(a.Gender),
		Address:          text(a.Address),
		FirstReleaseYear: number(a.FirstReleaseYear),
		Albums:           strconv.Itoa(a.NoOfAlbumsReleased),
		ManagerID:        number(a.ManagerID),
	}
}

func (f ArtistProfileForm) input() domain.ArtistInput {
	albums := 0
	if n := optionalInt(f.Albums); n != nil {
		albums = *n
	}
	return domain.ArtistInput{
		Name:               f.Name,
		DateOfBirth:        optional(f.DateOfBirth),
		Gender:             optional(f.Gender),
		Address:            optional(f.Address),
		FirstReleaseYear:   optionalInt(f.FirstReleaseYear),
		NoOfAlbumsReleased: albums,
		ManagerID:          optionalInt(f.ManagerID),
	}
}

// fields renders the profile inputs; managers is nil when the caller cannot
// pick a manager
func (f ArtistProfileForm) fields(managers map[int]string) []web.Field {
	fields := []web.Field{
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "date_of_birth", Label: "Date of birth", Type: "date", Value: f.DateOfBirth},
		{Name: "gender", Label: "Gender", Type: "select", Value: f.Gender, Options: genderOptions()},
		{Name: "address", Label: "Address", Type: "text", Value: f.Address},
		{Name: "first_release_year", Label: "First release year", Type: "number", Value: f.FirstReleaseYear},
		{Name: "no_of_albums_released", Label: "Albums released", Type: "number", Value: f.Albums},
	}
	if managers != nil {
		fields = append(fields, web.Field{Name: "manager_id_id", Label: "Manager", Type: "select", Value: f.ManagerID, Options: lookupOptions(managers)})
	}
	return fields
}

// ArtistForm creates an artist account with its profile, or edits the profile
type ArtistForm struct {
	Account AccountForm
	Profile ArtistProfileForm
}

func parseArtist(r *http.Request) ArtistForm {
	return ArtistForm{Account: parseAccount(r), Profile: parseArtistProfile(r)}
}

func (f ArtistForm) validate(editing bool) validation.FieldErrors {
	if editing {
		return validation.Struct(f.Profile)
	}
	return validation.Struct(f)
}

// ManagerProfileForm holds the editable manager profile fields
type ManagerProfileForm struct {
	Name         string `form:"name" validate:"required,max=255"`
	CompanyName  string `form:"company_name" validate:"required,max=255"`
	CompanyEmail string `form:"company_email" validate:"required,email"`
	CompanyPhone string `form:"company_phone" validate:"required,max=20"`
	Gender       string `form:"gender" validate:"omitempty,oneof=male female other"`
	Address      string `form:"address" validate:"max=255"`
	DateOfBirth  string `form:"date_of_birth" validate:"omitempty,isodate"`
}

func parseManagerProfile(r *http.Request) ManagerProfileForm {
	return ManagerProfileForm{
		Name:         value(r, "name"),
		CompanyName:  value(r, "company_name"),
		CompanyEmail: value(r, "company_email"),
		CompanyPhone: value(r, "company_phone"),
		Gender:       value(r, "gender"),
		Address:      value(r, "address"),
		DateOfBirth:  value(r, "date_of_birth"),
	}
}

func managerProfileFromItem(m domain.ManagerProfile) ManagerProfileForm {
	return ManagerProfileForm{
		Name:         m.Name,
		CompanyName:  m.CompanyName,
		CompanyEmail: m.CompanyEmail,
		CompanyPhone: m.CompanyPhone,
		Gender:       text(m.Gender),
		Address:      text(m.Address),
		DateOfBirth:  dateInput(m.DateOfBirth),
	}
}

func (f ManagerProfileForm) input() domain.ManagerInput {
	return domain.ManagerInput{
		Name:         f.Name,
		CompanyName:  f.CompanyName,
		CompanyEmail: f.CompanyEmail,
		CompanyPhone: f.CompanyPhone,
		Gender:       optional(f.Gender),
		Address:      optional(f.Address),
		DateOfBirth:  optional(f.DateOfBirth),
	}
}

func (f ManagerProfileForm) fields() []web.Field {
	return []web.Field{
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "company_name", Label: "Company", Type: "text", Value: f.CompanyName, Required: true},
		{Name: "company_email", Label: "Company email", Type: "email", Value: f.CompanyEmail, Required: true},
		{Name: "company_phone", Label: "Company phone", Type: "tel", Value: f.CompanyPhone, Required: true},
		{Name: "gender", Label: "Gender", Type: "select", Value: f.Gender, Options: genderOptions()},
		{Name: "address", Label: "Address", Type: "text", Value: f.Address},
		{Name: "date_of_birth", Label: "Date of birth", Type: "date", Value: f.DateOfBirth},
	}
}

// ManagerForm creates a manager account with its profile, or edits the profile
type ManagerForm struct {
	Account AccountForm
	Profile ManagerProfileForm
}

func parseManager(r *http.Request) ManagerForm {
	return ManagerForm{Account: parseAccount(r), Profile: parseManagerProfile(r)}
}

func (f ManagerForm) validate(editing bool) validation.FieldErrors {
	if editing {
		return validation.Struct(f.Profile)
	}
	return validation.Struct(f)
}

// MusicForm creates or edits a song. ArtistID is only offered to super
// admins; artists always create their own songs.
type MusicForm struct {
	Title       string `form:"title" validate:"required,max=255"`
	AlbumName   string `form:"album_name" validate:"required,max=255"`
	Genre       string `form:"genre" validate:"required,oneof=rnb country classic rock jazz pop"`
	ReleaseDate string `form:"release_date" validate:"omitempty,isodate"`
	ArtistID    string `form:"created_by_id" validate:"omitempty,numeric"`
}

func parseMusic(r *http.Request) MusicForm {
	return MusicForm{
		Title:       value(r, "title"),
		AlbumName:   value(r, "album_name"),
		Genre:       value(r, "genre"),
		ReleaseDate: value(r, "release_date"),
		ArtistID:    value(r, "created_by_id"),
	}
}

func musicFromItem(m domain.Music) MusicForm {
	return MusicForm{
		Title:       m.Title,
		AlbumName:   m.AlbumName,
		Genre:       string(m.Genre),
		ReleaseDate: dateInput(m.ReleaseDate),
		ArtistID:    strconv.Itoa(m.CreatedByID),
	}
}

func (f MusicForm) input() domain.MusicInput {
	in := domain.MusicInput{
		Title:       f.Title,
		AlbumName:   f.AlbumName,
		Genre:       domain.Genre(f.Genre),
		ReleaseDate: optional(f.ReleaseDate),
	}
	if id := optionalInt(f.ArtistID); id != nil {
		in.CreatedByID = *id
	}
	return in
}

func (f MusicForm) fields(artists map[int]string) []web.Field {
	fields := []web.Field{
		{Name: "title", Label: "Title", Type: "text", Value: f.Title, Required: true},
		{Name: "album_name", Label: "Album", Type: "text", Value: f.AlbumName, Required: true},
		{Name: "genre", Label: "Genre", Type: "select", Value: f.Genre, Options: genreOptions(), Required: true},
		{Name: "release_date", Label: "Release date", Type: "date", Value: f.ReleaseDate},
	}
	if artists != nil {
		fields = append(fields, web.Field{Name: "created_by_id", Label: "Artist", Type: "select", Value: f.ArtistID, Options: lookupOptions(artists), Required: true})
	}
	return fields
}
