package services

import (
	"strconv"

	"foodwaste/internal/catalogue"
	"foodwaste/internal/domain"
	"foodwaste/internal/metrics"
	"foodwaste/internal/repos"
)

type ReportService struct {
	Reports *repos.ReportRepo
}

func NewReportService(reports *repos.ReportRepo) *ReportService {
	return &ReportService{Reports: reports}
}

func (s *ReportService) List() []catalogue.Descriptor { return catalogue.All() }

// Run resolves ref (number or exact name), binds params and executes.
func (s *ReportService) Run(ref string, params map[string]string) (domain.Table, catalogue.Descriptor, error) {
	d, err := catalogue.Resolve(ref)
	if err != nil {
		return domain.Table{}, d, err
	}
	args, err := d.Bind(params)
	if err != nil {
		return domain.Table{}, d, err
	}
	t, err := s.Reports.Run(d, args...)
	metrics.QueryRuns.WithLabelValues(strconv.Itoa(int(d.ID)), metrics.Result(err)).Inc()
	return t, d, err
}
