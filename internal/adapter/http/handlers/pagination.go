package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// pageParams reads the page/per_page query pair, clamping anything the client
// sends to sane bounds.
func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
