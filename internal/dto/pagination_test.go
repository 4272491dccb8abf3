package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.Equal(t, 10, p.ItemsPerPage)

	// Division exacta.
	assert.Equal(t, 2, NewPagination(1, 10, 20).TotalPages)

	// Sin resultados.
	assert.Equal(t, 0, NewPagination(1, 10, 0).TotalPages)
}

func TestPageFilterOffset(t *testing.T) {
	assert.Equal(t, 0, PageFilter{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, PageFilter{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, PageFilter{Page: 3, Limit: 20}.Offset())
}

func TestRespuestaEnvolturas(t *testing.T) {
	r := OK("listo", "dato")
	assert.Equal(t, "listo", r.Message)
	assert.Nil(t, r.Pagination)

	p := NewPagination(2, 10, 35)
	l := Lista("pagina", []int{1, 2}, p)
	assert.Equal(t, p, l.Pagination)
}
