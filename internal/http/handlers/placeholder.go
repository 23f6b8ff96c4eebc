package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPlaceholderDim = 4000

// GET /api/placeholder/:width/:height
// Returns a simple SVG placeholder image. Stateless; nothing is cached or
// stored.
func Placeholder(c *gin.Context) {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil || width < 1 || width > maxPlaceholderDim {
		respondError(c, http.StatusBadRequest, "invalid_dimensions", "invalid width")
		return
	}
	height, err := strconv.Atoi(c.Param("height"))
	if err != nil || height < 1 || height > maxPlaceholderDim {
		respondError(c, http.StatusBadRequest, "invalid_dimensions", "invalid height")
		return
	}

	fontSize := min(width, height) / 10
	if fontSize < 1 {
		fontSize = 1
	}

	svg := fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">
	<rect width="%d" height="%d" fill="#f3f4f6"/>
	<text x="50%%" y="50%%" font-family="Arial, sans-serif" font-size="%d" fill="#9ca3af" text-anchor="middle" dy="0.3em">Event Image</text>
</svg>`, width, height, width, height, width, height, fontSize)

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
