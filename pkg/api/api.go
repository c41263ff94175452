// Package api exposes the engine over HTTP for local tooling: one
// endpoint to seal, one to open, and a health probe. Inputs and outputs
// use the same hexadecimal conventions as the console front end.
package api

import (
	"errors"
	"net/http"

	"cofb-go/pkg/cofb"
	"cofb-go/pkg/hexblock"
	"cofb-go/pkg/log"

	"github.com/labstack/echo/v4"
)

type Server struct {
	Api *echo.Echo
}

type sealRequest struct {
	Key     string `json:"key"`
	Nonce   string `json:"nonce"`
	AD      string `json:"ad,omitempty"`
	Message string `json:"message"`
}

type sealResponse struct {
	Ciphertext string `json:"ciphertext"`
	Tag        string `json:"tag"`
}

type openRequest struct {
	Key        string `json:"key"`
	Nonce      string `json:"nonce"`
	AD         string `json:"ad,omitempty"`
	Ciphertext string `json:"ciphertext"`
	Tag        string `json:"tag"`
}

type openResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer() *Server {
	api := echo.New()
	api.HideBanner = true
	s := &Server{Api: api}
	s.Api.GET("/healthz", s.Health)
	s.Api.POST("/v1/seal", s.Seal)
	s.Api.POST("/v1/open", s.Open)
	return s
}

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) Seal(c echo.Context) error {
	var req sealRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	key, err := hexblock.ParseKey(req.Key)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	nonce, err := hexblock.ParseNonce(req.Nonce)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	ad, err := hexblock.ParseMessage(req.AD)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	msg, err := hexblock.ParseMessage(req.Message)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ct, tag := cofb.Seal(key, nonce, ad, msg)
	log.Info().Str("op", "seal").Int("msg_blocks", len(msg)).Msg("api session complete")
	return c.JSON(http.StatusOK, sealResponse{
		Ciphertext: hexblock.FormatBlocks(ct),
		Tag:        hexblock.FormatBlock(tag),
	})
}

func (s *Server) Open(c echo.Context) error {
	var req openRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	key, err := hexblock.ParseKey(req.Key)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	nonce, err := hexblock.ParseNonce(req.Nonce)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	ad, err := hexblock.ParseMessage(req.AD)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	ct, err := hexblock.ParseBlocks(req.Ciphertext)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	tag, err := hexblock.ParseBlock(req.Tag)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	msg, err := cofb.Open(key, nonce, ad, ct, tag)
	if err != nil {
		if errors.Is(err, cofb.ErrAuthentication) {
			log.Warn().Str("op", "open").Msg("api authentication failed")
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	log.Info().Str("op", "open").Int("ct_blocks", len(ct)).Msg("api session complete")
	return c.JSON(http.StatusOK, openResponse{Message: hexblock.FormatBlocks(msg)})
}

func (s *Server) Run(addr string) {
	s.Api.Logger.Fatal(s.Api.Start(addr))
}
