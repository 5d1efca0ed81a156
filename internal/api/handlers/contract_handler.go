package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/lovecontract/internal/application"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"github.com/linskybing/lovecontract/pkg/response"
	"github.com/linskybing/lovecontract/pkg/utils"
)

const (
	msgInvalidContractID = "invalid contract id"
	msgContractNotFound  = "Contract not found"
	msgCreateFailed      = "Failed to create contract. Please try again."
	msgSignFailed        = "Failed to sign contract. Please try again."
	msgLoadFailed        = "Failed to load contract. Please try again."
)

type ContractHandler struct {
	svc              *application.ContractService
	celebrationDelay time.Duration
}

func NewContractHandler(svc *application.ContractService, celebrationDelay time.Duration) *ContractHandler {
	return &ContractHandler{svc: svc, celebrationDelay: celebrationDelay}
}

// GetTemplate godoc
// @Summary Default contract template
// @Description Title and promises used to prefill the creation form
// @Tags contracts
// @Produce json
// @Success 200 {object} contract.Template
// @Router /contracts/template [get]
func (h *ContractHandler) GetTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Template())
}

// CreateContract godoc
// @Summary Create a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body contract.CreateContractDTO true "Title and ordered terms"
// @Success 201 {object} contract.Contract
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var input contract.CreateContractDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.svc.CreateContract(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, msgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetContract godoc
// @Summary Get a contract with its terms and signatures
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} contract.ContractView
// @Failure 400 {object} response.ErrorResponse "Invalid contract id"
// @Failure 404 {object} response.ErrorResponse "Contract not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidContractID})
		return
	}

	view, err := h.svc.LoadContractView(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SignContract godoc
// @Summary Sign a contract as one partner
// @Description Completes the contract when both partners have signed
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param signature body contract.SignContractDTO true "Role, name and optional message"
// @Success 201 {object} contract.SignResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Contract not found"
// @Failure 409 {object} response.ErrorResponse "Role already signed"
// @Failure 500 {object} response.ErrorResponse
// @Router /contracts/{id}/signatures [post]
func (h *ContractHandler) SignContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidContractID})
		return
	}

	var input contract.SignContractDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.svc.SignContract(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err, msgSignFailed)
		return
	}

	resp := contract.SignResponse{SignResult: *result}
	if result.Completed {
		resp.CelebrationURL = "/contracts/" + id.String() + "/celebration"
		resp.RedirectAfterMs = h.celebrationDelay.Milliseconds()
	}
	c.JSON(http.StatusCreated, resp)
}

// GetCelebration godoc
// @Summary Celebration view of a contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} contract.CelebrationView
// @Failure 400 {object} response.ErrorResponse "Invalid contract id"
// @Failure 404 {object} response.ErrorResponse "Contract not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /contracts/{id}/celebration [get]
func (h *ContractHandler) GetCelebration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidContractID})
		return
	}

	view, err := h.svc.Celebration(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, view)
}

// writeError maps service errors to status codes. Store failures carry only the
// generic message; the cause was logged by the service.
func writeError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, application.ErrValidation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: validationMessage(err)})
	case errors.Is(err, application.ErrContractNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: msgContractNotFound})
	case errors.Is(err, application.ErrAlreadySigned):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: application.ErrAlreadySigned.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: generic})
	}
}

// validationMessage strips the sentinel prefix and capitalizes the remainder.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), application.ErrValidation.Error()+": ")
	if msg == "" {
		return err.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
