// Package reqparams rota parametrelerini okur.
package reqparams

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ID rota parametresini pozitif bir kimlik olarak okur.
func ID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// QueryID sorgu parametresini pozitif bir kimlik olarak okur.
func QueryID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
