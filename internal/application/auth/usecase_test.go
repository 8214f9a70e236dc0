package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func newAuthFixture(t *testing.T) (*fakeUserRepo, *fakeCompanyRepo, *auth.UseCase, *jwt.Service) {
	t.Helper()
	users := &fakeUserRepo{users: make(map[string]*entity.User)}
	companies := &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
	jwtService, err := jwt.NewService("secreto-de-prueba", "stock-ledger-test", 60)
	require.NoError(t, err)
	return users, companies, auth.NewUseCase(users, companies, jwtService), jwtService
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:                 "Ana Gómez",
		Email:                "ana@ejemplo.com",
		Password:             "secreta123",
		PasswordConfirmation: "secreta123",
		CompanyName:          "Ferretería El Tornillo",
	}
}

func TestRegister_CreaEmpresaYAdmin(t *testing.T) {
	users, companies, uc, jwtService := newAuthFixture(t)

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)
	assert.Equal(t, "active", out.User.Status)

	require.Len(t, companies.companies, 1)
	for _, c := range companies.companies {
		assert.Equal(t, "Ferretería El Tornillo", c.Name)
		assert.Equal(t, c.ID, out.User.CompanyID)
	}

	// El hash no viaja en la respuesta y el token lleva los claims del usuario.
	claims, err := jwtService.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, out.User.CompanyID, claims.CompanyID)
	assert.NotEqual(t, "secreta123", users.users[out.User.ID].PasswordHash)
}

func TestRegister_EmpresaTomaNombreDelUsuario(t *testing.T) {
	_, companies, uc, _ := newAuthFixture(t)

	in := registerRequest()
	in.CompanyName = ""
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	for _, c := range companies.companies {
		assert.Equal(t, "Ana Gómez", c.Name)
	}
}

func TestRegister_EmailYaRegistrado(t *testing.T) {
	_, _, uc, _ := newAuthFixture(t)

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	_, _, uc, _ := newAuthFixture(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@ejemplo.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@ejemplo.com", out.User.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	_, _, uc, _ := newAuthFixture(t)
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@ejemplo.com",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteOInactivo(t *testing.T) {
	users, _, uc, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	users.users[out.User.ID].Status = "suspended"

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@ejemplo.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	_, _, uc, _ := newAuthFixture(t)
	_, err := uc.Me(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
