package server

import (
	"SidePool/internal/ingestion"
	"SidePool/internal/observability"
	"SidePool/internal/persistence"
	"SidePool/internal/projection"
	"SidePool/internal/query"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "SidePool/gen/go/sidepool/admin/v1"
	eventsv1 "SidePool/gen/go/sidepool/events/v1"
	ingestv1 "SidePool/gen/go/sidepool/ingest/v1"
	queryv1 "SidePool/gen/go/sidepool/query/v1"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB            *sql.DB
	QueryService  *query.QueryService
	IngestService *ingestion.GRPCIngestService
	SnapshotMgr   *persistence.SnapshotManager
	StartTime     time.Time
	HealthChecker *observability.HealthChecker
	Metrics       *observability.Metrics

	// TakeSnapshot requests a snapshot from the core loop and returns
	// the sequence it was taken at. Optional; admin TakeSnapshot returns
	// Unavailable when unset.
	TakeSnapshot func(ctx context.Context) (int64, error)
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(metricsUnaryInterceptor(deps.Metrics)),
	)

	// Register services
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{qs: deps.QueryService})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:           deps.DB,
		snapMgr:      deps.SnapshotMgr,
		queryService: deps.QueryService,
		startTime:    deps.StartTime,
		takeSnapshot: deps.TakeSnapshot,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// metricsUnaryInterceptor records per-method request counts, latency and
// error codes for every gRPC call, including gateway-proxied HTTP requests.
func metricsUnaryInterceptor(m *observability.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if m != nil {
			outcome := "ok"
			if err != nil {
				outcome = "error"
				m.QueryErrors.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
			}
			m.QueryRequests.WithLabelValues(info.FullMethod, outcome).Inc()
			m.QueryDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		}
		return resp, err
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	// Register gateway handlers, which proxy HTTP/JSON to the gRPC server
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs *query.QueryService
}

func (s *queryServiceImpl) GetDepositorBalance(ctx context.Context, req *queryv1.GetDepositorBalanceRequest) (*queryv1.GetDepositorBalanceResponse, error) {
	if req.DepositorId == "" || req.PoolId == "" || req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "depositor_id, pool_id and asset are required")
	}

	depositorID, err := parseUUID(req.DepositorId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid depositor_id: %v", err)
	}
	poolID, err := parseUUID(req.PoolId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid pool_id: %v", err)
	}

	bal, err := s.qs.GetDepositorBalance(ctx, depositorID, poolID, req.Asset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get depositor balance: %v", err)
	}

	return &queryv1.GetDepositorBalanceResponse{
		DepositorId:  bal.DepositorID.String(),
		PoolId:       bal.PoolID.String(),
		Asset:        bal.Asset,
		Amount:       bal.Amount,
		AsOfSequence: bal.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetReservoirLevels(ctx context.Context, req *queryv1.GetReservoirLevelsRequest) (*queryv1.GetReservoirLevelsResponse, error) {
	if req.PoolId == "" {
		return nil, status.Error(codes.InvalidArgument, "pool_id is required")
	}

	poolID, err := parseUUID(req.PoolId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid pool_id: %v", err)
	}

	levels, err := s.qs.GetReservoirLevels(ctx, poolID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get reservoir levels: %v", err)
	}

	var pbLevels []*queryv1.ReservoirLevel
	for _, l := range levels {
		pbLevels = append(pbLevels, &queryv1.ReservoirLevel{
			Asset:     l.Asset,
			Reservoir: l.Reservoir,
			Surplus:   l.Surplus,
			NetFunded: l.NetFunded,
		})
	}

	var asOf int64
	if len(levels) > 0 {
		asOf = levels[0].AsOfSequence
	}

	return &queryv1.GetReservoirLevelsResponse{
		PoolId:       req.PoolId,
		Levels:       pbLevels,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) ListPositionDebts(ctx context.Context, req *queryv1.ListPositionDebtsRequest) (*queryv1.ListPositionDebtsResponse, error) {
	if req.PoolId == "" {
		return nil, status.Error(codes.InvalidArgument, "pool_id is required")
	}

	poolID, err := parseUUID(req.PoolId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid pool_id: %v", err)
	}

	var controller *googleuuid.UUID
	if req.Controller != "" {
		c, err := parseUUID(req.Controller)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid controller: %v", err)
		}
		controller = &c
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	debts, err := s.qs.GetPositionDebts(ctx, poolID, controller, pageSize)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get position debts: %v", err)
	}

	var pbDebts []*queryv1.PositionDebt
	for _, d := range debts {
		pbDebts = append(pbDebts, &queryv1.PositionDebt{
			Controller: d.Controller.String(),
			Salt:       d.Salt,
			Asset:      d.Asset,
			Debt:       d.Debt,
		})
	}

	var asOf int64
	if len(debts) > 0 {
		asOf = debts[0].AsOfSequence
	}

	return &queryv1.ListPositionDebtsResponse{
		PoolId:       req.PoolId,
		Debts:        pbDebts,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) ListOperations(ctx context.Context, req *queryv1.ListOperationsRequest) (*queryv1.ListOperationsResponse, error) {
	if req.PoolId == "" {
		return nil, status.Error(codes.InvalidArgument, "pool_id is required")
	}

	poolID, err := parseUUID(req.PoolId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid pool_id: %v", err)
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	ops, err := s.qs.GetOperations(ctx, poolID, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get operations: %v", err)
	}

	var pbOps []*queryv1.Operation
	for _, op := range ops {
		pbOp := &queryv1.Operation{
			Sequence:    op.Sequence,
			EventType:   op.EventType,
			TimestampUs: op.TimestampUs,
		}
		if op.PoolID != nil {
			pbOp.PoolId = op.PoolID.String()
		}
		if op.CorrectionA != nil {
			pbOp.CorrectionA = *op.CorrectionA
		}
		if op.CorrectionB != nil {
			pbOp.CorrectionB = *op.CorrectionB
		}
		pbOps = append(pbOps, pbOp)
	}

	return &queryv1.ListOperationsResponse{
		Operations: pbOps,
	}, nil
}

func (s *queryServiceImpl) ListJournals(ctx context.Context, req *queryv1.ListJournalsRequest) (*queryv1.ListJournalsResponse, error) {
	if req.DepositorId == "" {
		return nil, status.Error(codes.InvalidArgument, "depositor_id is required")
	}

	depositorID, err := parseUUID(req.DepositorId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid depositor_id: %v", err)
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	entries, err := s.qs.GetJournalHistory(ctx, depositorID, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get journals: %v", err)
	}

	var journals []*queryv1.JournalRecord
	for _, e := range entries {
		journals = append(journals, &queryv1.JournalRecord{
			JournalId:     e.JournalID,
			BatchId:       e.BatchID,
			EventSequence: e.Sequence,
			DebitAccount:  e.DebitAccount,
			CreditAccount: e.CreditAccount,
			AssetId:       fmt.Sprintf("%d", e.AssetID),
			Amount:        e.Amount,
			JournalType:   fmt.Sprintf("%d", e.JournalType),
			TimestampUs:   e.Timestamp,
		})
	}

	return &queryv1.ListJournalsResponse{
		Journals: journals,
	}, nil
}

func (s *queryServiceImpl) GetSystemStatus(ctx context.Context, req *queryv1.GetSystemStatusRequest) (*queryv1.GetSystemStatusResponse, error) {
	return &queryv1.GetSystemStatusResponse{
		State: "ready",
	}, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitEvent(ctx context.Context, req *ingestv1.SubmitEventRequest) (*ingestv1.SubmitEventResponse, error) {
	if req.Envelope == nil {
		return nil, status.Error(codes.InvalidArgument, "envelope is required")
	}

	// Map protobuf EventType enum to string event type name for the parser
	eventTypeName := protoEventTypeToString(req.Envelope.EventType)
	if eventTypeName == "" {
		return nil, status.Errorf(codes.InvalidArgument, "unknown event_type: %d", req.Envelope.EventType)
	}

	raw := ingestion.RawEvent{
		Subject: eventTypeName,
		Data:    req.Envelope.Payload,
	}

	evt, err := ingestion.ParseRawEvent(raw, eventTypeName)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse payload: %v", err)
	}

	// Inject into the event channel (same path as GRPCIngestService)
	select {
	case s.svc.EventChan() <- evt:
		return &ingestv1.SubmitEventResponse{Accepted: true}, nil
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "context cancelled")
	}
}

func (s *ingestServiceImpl) BindPool(ctx context.Context, req *ingestv1.BindPoolRequest) (*ingestv1.BindPoolResponse, error) {
	if req.PoolId == "" || req.AssetA == "" || req.AssetB == "" {
		return nil, status.Error(codes.InvalidArgument, "pool_id, asset_a and asset_b are required")
	}

	poolID, err := parseUUID(req.PoolId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid pool_id: %v", err)
	}

	if err := s.svc.InjectPoolBinding(ctx, poolID, req.AssetA, req.AssetB); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bind pool: %v", err)
	}

	return &ingestv1.BindPoolResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) Fund(ctx context.Context, req *ingestv1.FundRequest) (*ingestv1.FundResponse, error) {
	poolID, depositorID, err := parseFundParties(req.PoolId, req.DepositorId)
	if err != nil {
		return nil, err
	}
	if req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset is required")
	}

	if err := s.svc.InjectFund(ctx, poolID, depositorID, req.Asset, req.Amount, req.SourceSequence); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "fund: %v", err)
	}

	return &ingestv1.FundResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) Defund(ctx context.Context, req *ingestv1.DefundRequest) (*ingestv1.DefundResponse, error) {
	poolID, depositorID, err := parseFundParties(req.PoolId, req.DepositorId)
	if err != nil {
		return nil, err
	}
	if req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset is required")
	}

	if err := s.svc.InjectDefund(ctx, poolID, depositorID, req.Asset, req.Amount, req.SourceSequence); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "defund: %v", err)
	}

	return &ingestv1.DefundResponse{Accepted: true}, nil
}

func parseFundParties(poolIDStr, depositorIDStr string) (googleuuid.UUID, googleuuid.UUID, error) {
	poolID, err := parseUUID(poolIDStr)
	if err != nil {
		return googleuuid.UUID{}, googleuuid.UUID{}, status.Errorf(codes.InvalidArgument, "invalid pool_id: %v", err)
	}
	depositorID, err := parseUUID(depositorIDStr)
	if err != nil {
		return googleuuid.UUID{}, googleuuid.UUID{}, status.Errorf(codes.InvalidArgument, "invalid depositor_id: %v", err)
	}
	return poolID, depositorID, nil
}

func protoEventTypeToString(et eventsv1.EventType) string {
	switch et {
	case eventsv1.EventType_POOL_BOUND:
		return "pool_bound"
	case eventsv1.EventType_FUND_REQUESTED:
		return "fund_requested"
	case eventsv1.EventType_DEFUND_REQUESTED:
		return "defund_requested"
	case eventsv1.EventType_POSITION_CHANGED:
		return "position_changed"
	default:
		return ""
	}
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db           *sql.DB
	snapMgr      *persistence.SnapshotManager
	queryService *query.QueryService
	startTime    time.Time
	takeSnapshot func(ctx context.Context) (int64, error)
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	if s.takeSnapshot == nil {
		return nil, status.Error(codes.Unavailable, "snapshot trigger not wired")
	}

	seq, err := s.takeSnapshot(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "take snapshot: %v", err)
	}

	return &adminv1.TakeSnapshotResponse{
		Sequence: seq,
	}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{
		Started: true,
		TaskId:  "rebuild-sync",
	}, nil
}

func (s *adminServiceImpl) GetEventLogInfo(ctx context.Context, req *adminv1.GetEventLogInfoRequest) (*adminv1.GetEventLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	return &adminv1.GetEventLogInfoResponse{
		LastSequence: latestSeq,
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy && len(report.HashChainBreaks) > 0 {
		resp.FirstMismatchSequence = report.HashChainBreaks[0]
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d unbalanced assets",
			len(report.HashChainBreaks), len(report.UnbalancedAssets))
	}

	return resp, nil
}

// ============================================================================
// Helpers
// ============================================================================

func parseUUID(s string) (googleuuid.UUID, error) {
	return googleuuid.Parse(s)
}
