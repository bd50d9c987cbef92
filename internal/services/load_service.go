package services

import (
	"github.com/google/uuid"

	"foodwaste/internal/ingest"
	applog "foodwaste/internal/log"
	"foodwaste/internal/metrics"
	"foodwaste/internal/repos"
)

type LoadReport struct {
	LoadID string         `json:"load_id"`
	Rows   map[string]int `json:"rows"`
}

type LoadService struct {
	Store *repos.StoreRepo
	Src   ingest.Sources
}

func NewLoadService(store *repos.StoreRepo, src ingest.Sources) *LoadService {
	return &LoadService{Store: store, Src: src}
}

// Load replaces all four tables from the sources. Every source is parsed
// before the store is touched and the swap is a single transaction, so
// a failed load leaves the previous data authoritative.
func (s *LoadService) Load() (LoadReport, error) {
	rep := LoadReport{LoadID: uuid.NewString()}
	applog.Info(nil, "load.start", map[string]any{"load_id": rep.LoadID})

	batch, err := ingest.Read(s.Src)
	if err == nil {
		err = s.Store.Replace(batch)
	}
	metrics.Loads.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		applog.Error(nil, "load.fail", err, map[string]any{"load_id": rep.LoadID})
		return rep, err
	}

	rep.Rows = batch.Counts()
	for t, n := range rep.Rows {
		metrics.LoadedRows.WithLabelValues(t).Set(float64(n))
	}
	applog.Info(nil, "load.done", map[string]any{"load_id": rep.LoadID, "rows": rep.Rows})
	return rep, nil
}
