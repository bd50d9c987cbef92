package handlers

import (
	"github.com/jmoiron/sqlx"

	"foodwaste/internal/ingest"
	"foodwaste/internal/repos"
	"foodwaste/internal/services"
)

type Deps struct {
	Loader *services.LoadService
	// WriteLimit bounds writes per client per minute.
	WriteLimit int

	DashboardHandler *DashboardHandler
	ReportHandler    *ReportHandler
	ListingHandler   *ListingHandler
	ClaimHandler     *ClaimHandler
	AdminHandler     *AdminHandler
}

// NewDeps wires every repo, service and handler around the one store
// handle.
func NewDeps(db *sqlx.DB, src ingest.Sources) *Deps {
	storeRepo := repos.NewStoreRepo(db)
	provRepo := repos.NewProviderRepo(db)
	recvRepo := repos.NewReceiverRepo(db)
	listRepo := repos.NewListingRepo(db)
	claimRepo := repos.NewClaimRepo(db)
	reportRepo := repos.NewReportRepo(db)

	loadSvc := services.NewLoadService(storeRepo, src)
	dashSvc := services.NewDashboardService(storeRepo, provRepo, recvRepo, listRepo, claimRepo)
	reportSvc := services.NewReportService(reportRepo)
	gateway := services.NewGatewayService(listRepo, claimRepo)

	return &Deps{
		Loader:           loadSvc,
		WriteLimit:       30,
		DashboardHandler: &DashboardHandler{Dash: dashSvc, Reports: reportSvc},
		ReportHandler:    &ReportHandler{Reports: reportSvc},
		ListingHandler:   &ListingHandler{Gateway: gateway, Dash: dashSvc},
		ClaimHandler:     &ClaimHandler{Gateway: gateway},
		AdminHandler:     &AdminHandler{Loader: loadSvc},
	}
}
