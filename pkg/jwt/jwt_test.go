package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

func TestService_GenerarYValidarToken(t *testing.T) {
	svc, err := jwt.NewService("secreto-de-prueba", "stock-ledger", 60)
	require.NoError(t, err)

	token, err := svc.Generate("user-1", "company-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "stock-ledger", claims.Issuer)
}

func TestService_RechazaFirmaDeOtroSecreto(t *testing.T) {
	emisor, err := jwt.NewService("secreto-a", "stock-ledger", 60)
	require.NoError(t, err)
	receptor, err := jwt.NewService("secreto-b", "stock-ledger", 60)
	require.NoError(t, err)

	token, err := emisor.Generate("user-1", "company-1", "admin")
	require.NoError(t, err)

	_, err = receptor.Parse(token)
	assert.Error(t, err)
}

func TestService_RechazaTokenMalformado(t *testing.T) {
	svc, err := jwt.NewService("secreto", "stock-ledger", 60)
	require.NoError(t, err)

	_, err = svc.Parse("no-es-un-jwt")
	assert.Error(t, err)
}

func TestNewService_SecretVacio(t *testing.T) {
	_, err := jwt.NewService("", "stock-ledger", 60)
	assert.Error(t, err)
}
