package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/internal/domain/repository"
	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// CalculatorService evaluates quantity arithmetic over catalog units.
type CalculatorService struct {
	catalog *CatalogService
	log     port.Logger
	metrics port.Metrics
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(catalog *CatalogService, log port.Logger, metrics port.Metrics) *CalculatorService {
	return &CalculatorService{
		catalog: catalog,
		log:     log.With("component", "calculator"),
		metrics: metrics,
	}
}

// Calculate applies req.Operation to the two quantities.
// Operands without an explicit space are resolved in spaceName.
//
// Parameters:
//   - ctx: request context
//   - spaceName: default space of the operands
//   - req: the validated calculation request
//
// Returns:
//   - dto.CalculateResponse: the resulting value and unit
//   - error: not found errors, or a *vo.MismatchError when the unit algebra
//     rejects the operation
func (s *CalculatorService) Calculate(ctx context.Context, spaceName string, req dto.CalculateRequest) (dto.CalculateResponse, error) {
	start := time.Now()
	log := s.log.WithContext(ctx).With("operation", req.Operation)

	left, err := s.operand(ctx, spaceName, req.Left)
	if err != nil {
		return dto.CalculateResponse{}, err
	}
	right, err := s.operand(ctx, spaceName, req.Right)
	if err != nil {
		return dto.CalculateResponse{}, err
	}

	result, err := Apply(req.Operation, left, right)
	if err != nil {
		log.Warn("Calculation rejected", "left", left.Unit().String(), "right", right.Unit().String(), "error", err)
		s.metrics.Counter("calculator_operations_total", 1, map[string]string{"operation": req.Operation, "outcome": "rejected"})
		return dto.CalculateResponse{}, err
	}

	resp := dto.CalculateResponse{
		Exponents:  result.Unit().Exponents().Values(),
		Expression: result.Unit().String(),
	}
	resp.SetValue(result.Value())
	if match := s.catalog.MatchUnit(ctx, result.Unit()); match != nil {
		resp.MatchedUnit = match.Name
	}

	log.Debug("Calculation completed", "result", result.String(), "matched_unit", resp.MatchedUnit)
	s.metrics.Counter("calculator_operations_total", 1, map[string]string{"operation": req.Operation, "outcome": "ok"})
	s.metrics.Timing("calculator_operation_duration", time.Since(start), map[string]string{"operation": req.Operation})
	return resp, nil
}

// operand resolves a quantity DTO against the catalog.
func (s *CalculatorService) operand(ctx context.Context, spaceName string, q dto.QuantityDTO) (vo.Quantity[float64], error) {
	if q.Value == nil {
		return vo.Quantity[float64]{}, fmt.Errorf("%w: missing value for unit %q", repository.ErrInvalidInput, q.Unit)
	}
	if q.Space != "" {
		spaceName = q.Space
	}
	def, err := s.catalog.GetUnit(ctx, spaceName, q.Unit)
	if err != nil {
		return vo.Quantity[float64]{}, err
	}
	return def.Quantity(*q.Value), nil
}

// Apply performs a named arithmetic operation on two quantities.
//
// Parameters:
//   - operation: one of the dto.Operation* names
//   - left, right: the operands
//
// Returns:
//   - vo.Quantity[float64]: the result
//   - error: the unit algebra error, or repository.ErrInvalidInput for an
//     unknown operation
func Apply(operation string, left, right vo.Quantity[float64]) (vo.Quantity[float64], error) {
	switch operation {
	case dto.OperationAdd:
		return left.AddSafe(right)
	case dto.OperationSubtract:
		return left.SubtractSafe(right)
	case dto.OperationMultiply:
		return left.MultiplySafe(right)
	case dto.OperationDivide:
		return left.DivideSafe(right)
	default:
		return vo.Quantity[float64]{}, fmt.Errorf("%w: unknown operation %q", repository.ErrInvalidInput, operation)
	}
}
