package cachectrl

import (
	"github.com/gofiber/fiber/v2"
)

// OptOut marks a response as uncacheable. Snapshot files are rewritten by the external
// batch at any time, and the dashboard relies on polling to notice.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
