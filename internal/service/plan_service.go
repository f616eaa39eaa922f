package service

import (
	"context"
	"io"

	"github.com/TiwariPiyush2510/Par-Stock/internal/catalog"
	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/TiwariPiyush2510/Par-Stock/internal/engine"
	"github.com/TiwariPiyush2510/Par-Stock/internal/ingest"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Upload is one decoded-on-demand input file. Label is only meaningful for
// supplier catalogs, where it becomes the supplier attribution label.
type Upload struct {
	Name   string
	Label  string
	Reader io.Reader
}

// PlanRequest carries everything one calculation needs. Suppliers are in
// priority order; stored catalogs referenced by id rank after the uploaded
// ones.
type PlanRequest struct {
	Weekly     Upload
	Monthly    Upload
	Stock      *Upload
	Suppliers  []Upload
	CatalogIDs []string
}

// PlanResult is the structured success response: the plan table plus the
// number of rows dropped for having no usable item identity.
type PlanResult struct {
	Plans       []domain.FinalStockPlan `json:"result"`
	DroppedRows int                     `json:"dropped_rows"`
}

type PlanService struct {
	engine   *engine.Engine
	catalogs catalog.Store
}

func NewPlanService(eng *engine.Engine, catalogs catalog.Store) *PlanService {
	if catalogs == nil {
		catalogs = catalog.NewMemoryStore()
	}
	return &PlanService{engine: eng, catalogs: catalogs}
}

// Calculate ingests the uploaded tables and runs the par-stock engine. Any
// MalformedInputError aborts the whole request with no partial results.
func (s *PlanService) Calculate(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	var (
		weekly, monthly              []domain.ConsumptionRecord
		stock                        map[string]domain.StockFigures
		droppedW, droppedM, droppedS int
	)

	// The three consumption-side tables are independent; parse them in
	// parallel.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		weekly, droppedW, err = parseConsumptionUpload(req.Weekly)
		return err
	})
	g.Go(func() error {
		var err error
		monthly, droppedM, err = parseConsumptionUpload(req.Monthly)
		return err
	})
	if req.Stock != nil {
		stockUpload := *req.Stock
		g.Go(func() error {
			table, err := ingest.ReadTable(stockUpload.Reader, stockUpload.Name)
			if err != nil {
				return err
			}
			stock, droppedS, err = ingest.ParseStock(table)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalogs, err := s.resolveCatalogs(ctx, req)
	if err != nil {
		return nil, err
	}

	plans, err := s.engine.ComputePlan(engine.PlanInput{
		Weekly:   weekly,
		Monthly:  monthly,
		Catalogs: catalogs,
		Stock:    stock,
	})
	if err != nil {
		return nil, err
	}

	dropped := droppedW + droppedM + droppedS
	if dropped > 0 {
		log.Warn().Int("rows", dropped).Msg("dropped rows with blank item identity")
	}

	return &PlanResult{Plans: plans, DroppedRows: dropped}, nil
}

// StoreCatalog ingests a supplier catalog upload and saves it under the given
// id for reuse in later calculations.
func (s *PlanService) StoreCatalog(ctx context.Context, id string, up Upload) (int, error) {
	table, err := ingest.ReadTable(up.Reader, up.Name)
	if err != nil {
		return 0, err
	}

	label := up.Label
	if label == "" {
		label = id
	}
	cat, dropped, err := ingest.ParseCatalog(table, label)
	if err != nil {
		return 0, err
	}
	if dropped > 0 {
		log.Warn().Str("catalog", id).Int("rows", dropped).Msg("dropped catalog rows with blank item identity")
	}

	if err := s.catalogs.Save(ctx, id, cat); err != nil {
		return 0, err
	}
	return len(cat.Entries), nil
}

func (s *PlanService) ListCatalogs(ctx context.Context) ([]string, error) {
	return s.catalogs.List(ctx)
}

func (s *PlanService) DeleteCatalog(ctx context.Context, id string) error {
	return s.catalogs.Delete(ctx, id)
}

// resolveCatalogs builds the priority-ordered catalog list: uploaded catalogs
// first, in upload order, then stored catalogs in the order their ids were
// given. An unknown id is a caller error, not a silent skip.
func (s *PlanService) resolveCatalogs(ctx context.Context, req PlanRequest) ([]domain.SupplierCatalog, error) {
	catalogs := make([]domain.SupplierCatalog, 0, len(req.Suppliers)+len(req.CatalogIDs))

	for _, up := range req.Suppliers {
		table, err := ingest.ReadTable(up.Reader, up.Name)
		if err != nil {
			return nil, err
		}
		cat, dropped, err := ingest.ParseCatalog(table, up.Label)
		if err != nil {
			return nil, err
		}
		if dropped > 0 {
			log.Warn().Str("catalog", up.Label).Int("rows", dropped).Msg("dropped catalog rows with blank item identity")
		}
		catalogs = append(catalogs, cat)
	}

	for _, id := range req.CatalogIDs {
		cat, ok, err := s.catalogs.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &domain.MalformedInputError{Input: id, Reason: "unknown catalog id"}
		}
		catalogs = append(catalogs, cat)
	}

	return catalogs, nil
}

func parseConsumptionUpload(up Upload) ([]domain.ConsumptionRecord, int, error) {
	table, err := ingest.ReadTable(up.Reader, up.Name)
	if err != nil {
		return nil, 0, err
	}
	return ingest.ParseConsumption(table)
}
