package api

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/varunriyer/ozark-app/internal/buildinfo"
	"github.com/varunriyer/ozark-app/internal/cache"
	"github.com/varunriyer/ozark-app/internal/memory"
	"github.com/varunriyer/ozark-app/internal/model"
	"github.com/varunriyer/ozark-app/internal/statement"
)

// ConvertResponse is the JSON reply from the convert endpoint.
type ConvertResponse struct {
	Success      bool                `json:"success"`
	Error        string              `json:"error,omitempty"`
	ConversionID string              `json:"conversionId,omitempty"`
	Format       string              `json:"format,omitempty"`
	Count        int                 `json:"count"`
	Transactions []model.Transaction `json:"transactions"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Store memory.Store
	Cache *cache.Cache
	Log   zerolog.Logger
}

// Register sets up the API routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/convert", h.handleConvert)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": buildinfo.Version,
	})
}

// handleConvert accepts a multipart statement upload, parses it and returns
// hint-injected transactions. Categorization stays a separate client-driven
// step so the endpoint never blocks on the oracle.
func (h *Handler) handleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	key := cache.Key{Name: fileHeader.Filename, Size: fileHeader.Size}
	txns, format, hit := h.cachedParse(key)
	if !hit {
		f, err := fileHeader.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("opening upload: %v", err))
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("reading upload: %v", err))
		}

		txns, format = statement.Parse(string(data))
		if h.Cache != nil {
			h.Cache.Put(key, txns, format)
		}
	}

	if err := memory.Inject(txns, h.Store); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("memory injection: %v", err))
	}

	conversionID := uuid.NewString()
	h.Log.Info().
		Str("conversion_id", conversionID).
		Str("file", fileHeader.Filename).
		Str("format", string(format)).
		Int("transactions", len(txns)).
		Bool("cache_hit", hit).
		Msg("statement converted")

	if txns == nil {
		txns = []model.Transaction{}
	}
	return c.JSON(ConvertResponse{
		Success:      true,
		ConversionID: conversionID,
		Format:       string(format),
		Count:        len(txns),
		Transactions: txns,
	})
}

func (h *Handler) cachedParse(key cache.Key) ([]model.Transaction, statement.Format, bool) {
	if h.Cache == nil {
		return nil, statement.FormatUnknown, false
	}
	return h.Cache.Get(key)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []model.Transaction{},
	})
}
