// Command server exposes the search engine over HTTP for step-by-step
// playback: upload a graph document, start a run for one of the eight
// algorithms, and pull observation points one request at a time.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v3"

	"github.com/kavindamihiran/ai-search/playback"
	"github.com/kavindamihiran/ai-search/search"
)

func main() {
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	store := playback.NewStore()
	app := fiber.New()

	// ── Graphs ────────────────────────────────────────────────────────
	app.Post("/graphs", func(c fiber.Ctx) error {
		id, err := store.CreateGraph(c.Body())
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/graphs/:id", func(c fiber.Ctx) error {
		doc, err := store.GraphDoc(c.Params("id"))
		if errors.Is(err, playback.ErrGraphNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "graph not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(doc)
	})

	app.Delete("/graphs/:id", func(c fiber.Ctx) error {
		err := store.DeleteGraph(c.Params("id"))
		if errors.Is(err, playback.ErrGraphNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "graph not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Runs ──────────────────────────────────────────────────────────
	app.Post("/graphs/:id/runs", func(c fiber.Ctx) error {
		var cfg playback.RunConfig
		if err := c.Bind().JSON(&cfg); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.StartRun(c.Params("id"), cfg)
		if errors.Is(err, playback.ErrGraphNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "graph not found"})
		}
		if errors.Is(err, search.ErrUnknownAlgorithm) ||
			errors.Is(err, search.ErrSourceNotFound) ||
			errors.Is(err, search.ErrGoalNotFound) ||
			errors.Is(err, search.ErrOptionViolation) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Post("/runs/:id/step", func(c fiber.Ctx) error {
		snap, done, err := store.Step(c.Params("id"))
		if errors.Is(err, playback.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"snapshot": snap, "done": done})
	})

	app.Get("/runs/:id", func(c fiber.Ctx) error {
		snap, done, err := store.Latest(c.Params("id"))
		if errors.Is(err, playback.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		outcome, err := store.Outcome(c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"snapshot": snap, "done": done, "outcome": outcome})
	})

	app.Delete("/runs/:id", func(c fiber.Ctx) error {
		err := store.CancelRun(c.Params("id"))
		if errors.Is(err, playback.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	log.Fatal(app.Listen(addr))
}
