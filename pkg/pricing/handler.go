package pricing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
)

func NewHandler(calculator *Calculator) Handler {
	return Handler{calculator}
}

type Handler struct {
	calculator *Calculator
}

type pricingResponse struct {
	Table Table  `json:"table"`
	Quote *Quote `json:"quote,omitempty"`
}

// Get returns the pricing table and, when a resource shape is supplied via
// query parameters, a quote for it.
func (h Handler) Get(c *gin.Context) {
	response := pricingResponse{Table: h.calculator.Table()}

	if c.Query("cpu") != "" || c.Query("memory") != "" || c.Query("storage") != "" {
		cpu, err := intQuery(c, "cpu")
		if err != nil {
			_ = c.Error(err)
			return
		}
		memory, err := intQuery(c, "memory")
		if err != nil {
			_ = c.Error(err)
			return
		}
		storage, err := intQuery(c, "storage")
		if err != nil {
			_ = c.Error(err)
			return
		}
		quote := h.calculator.Quote(cpu, memory, storage, c.DefaultQuery("provider", "aws"))
		response.Quote = &quote
	}

	c.JSON(http.StatusOK, response)
}

func intQuery(c *gin.Context, name string) (int, error) {
	value := c.Query(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, errdef.NewBadRequest("%s must be a non-negative integer", name)
	}
	return n, nil
}
