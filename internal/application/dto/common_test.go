package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
)

func TestNewPagination_CalculaPaginas(t *testing.T) {
	p := dto.NewPagination(1, 25, 60)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 3, p.PageCount)
	assert.Equal(t, 60, p.TotalCount)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPagination_TotalExacto(t *testing.T) {
	p := dto.NewPagination(2, 10, 20)
	assert.Equal(t, 2, p.PageCount)
	assert.Equal(t, 10, p.Offset())
}

func TestNewPagination_SinResultados(t *testing.T) {
	p := dto.NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.PageCount)
	assert.Equal(t, 0, p.TotalCount)
}

func TestNewPagination_NormalizaValoresInvalidos(t *testing.T) {
	p := dto.NewPagination(0, 0, 5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 1, p.PageCount)
}
