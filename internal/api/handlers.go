package api

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/condenselabs/condense/pkg/summarize"
)

// ChunkPayload mirrors one retrieved excerpt as sent by the retrieval layer.
type ChunkPayload struct {
	Metadata map[string]string `json:"metadata"`
	Score    float64           `json:"score"`
	Content  string            `json:"content"`
}

// SummarizeRequest is the JSON body accepted by the summarize endpoints.
type SummarizeRequest struct {
	Query string         `json:"query"`
	Data  []ChunkPayload `json:"data"`
}

// Handler holds the handlers' dependencies.
type Handler struct {
	svc *summarize.Summarizer
}

func NewHandler(svc *summarize.Summarizer) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// SummarizeJSON condenses excerpts posted as a JSON body.
func (h *Handler) SummarizeJSON(c *fiber.Ctx) error {
	var req SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	summary, status, err := h.run(c, req)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"input_type": "json_body",
		"query":      req.Query,
		"summary":    summary,
	})
}

// SummarizeFile condenses excerpts uploaded as a JSON file (multipart form
// field "file"), with an optional "query" form field.
func (h *Handler) SummarizeFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required (form field: file)"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot open uploaded file"})
	}
	defer f.Close()

	var req SummarizeRequest
	if err := json.NewDecoder(f).Decode(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "uploaded file is not valid JSON"})
	}
	if q := c.FormValue("query"); q != "" {
		req.Query = q
	}

	summary, status, err := h.run(c, req)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"input_type": "file_upload",
		"filename":   fileHeader.Filename,
		"query":      req.Query,
		"summary":    summary,
	})
}

func (h *Handler) run(c *fiber.Ctx, req SummarizeRequest) (string, int, error) {
	entries := make([]summarize.DocumentEntry, 0, len(req.Data))
	for _, chunk := range req.Data {
		entries = append(entries, summarize.DocumentEntry{
			Metadata: chunk.Metadata,
			Score:    chunk.Score,
			Content:  chunk.Content,
		})
	}

	summary, err := h.svc.Summarize(c.Context(), entries, req.Query)
	if err != nil {
		log.Printf("summarize error: %v", err)
		return "", statusFor(err), err
	}
	return summary, fiber.StatusOK, nil
}

func statusFor(err error) int {
	var mapErr *summarize.MapPhaseError
	var reduceErr *summarize.ReducePhaseError
	switch {
	case errors.Is(err, summarize.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.As(err, &mapErr), errors.As(err, &reduceErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
