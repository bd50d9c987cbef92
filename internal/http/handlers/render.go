package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		data["RequestID"] = rid
	}
	return c.Render(tmpl, data)
}

// notFound renders the shared error page.
func notFound(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).Render("notfound", fiber.Map{"Message": msg})
}
