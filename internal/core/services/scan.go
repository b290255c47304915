package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
	"github.com/custodia-labs/driverfinder/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.Scanner = (*ScanService)(nil)

// Status lines reported to the event sink.
const (
	StatusAuthFailed        = "ERROR: API key is invalid or the service is unreachable."
	StatusScanning          = "Scanning local hardware..."
	StatusEnumerationFailed = "ERROR: Device inventory query failed (administrator privileges may be required)."
	StatusNoDevices         = "No hardware identifiers found to scan."
	StatusCompleted         = "Scan complete."
)

// nameDisplayLimit caps device names in per-device status lines.
const nameDisplayLimit = 50

// eventBuffer is the capacity of the channel returned by Start.
const eventBuffer = 64

// ScanService runs the driver link resolution pipeline:
// authenticate, enumerate, extract, then resolve each device in order.
// Devices are never queried concurrently and a failed query ends the scan.
type ScanService struct {
	factory   driven.LLMFactory
	inventory driven.DeviceInventory
	platform  driven.PlatformProbe
	prompts   driven.PromptStore
	settings  domain.AppSettings
	newID     func() string
}

// NewScanService creates a new scan service.
// prompts is optional - if nil, the built-in driver link prompt is used.
func NewScanService(
	factory driven.LLMFactory,
	inventory driven.DeviceInventory,
	platform driven.PlatformProbe,
	prompts driven.PromptStore,
	settings domain.AppSettings,
) *ScanService {
	return &ScanService{
		factory:   factory,
		inventory: inventory,
		platform:  platform,
		prompts:   prompts,
		settings:  settings,
		newID:     func() string { return uuid.New().String() },
	}
}

// Scan runs one scan synchronously. Every path that passes the credential
// check ends with exactly one sink.OnCompleted call. The returned error is
// the terminal failure, if any; finding no devices is not an error.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (s *ScanService) Scan(
	ctx context.Context,
	req driving.ScanRequest,
	sink driving.EventSink,
) (*domain.ScanSession, error) {
	credential := strings.TrimSpace(req.Credential)
	if credential == "" {
		return nil, fmt.Errorf("%w: credential is required", domain.ErrInvalidInput)
	}
	if s.factory == nil || s.inventory == nil {
		return nil, fmt.Errorf("scan service not configured")
	}

	session := domain.NewScanSession(s.newID(), credential, s.platformLabel(ctx))
	defer sink.OnCompleted()

	logger.Section("Scan " + session.ID)
	logger.Info("platform: %s", session.PlatformLabel)

	// 1. Authenticate
	llm, err := s.factory.Create(s.settings.LLM.WithCredential(credential))
	if err != nil {
		sink.OnStatus(StatusAuthFailed)
		return session, fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}
	defer llm.Close()

	resolver := NewLinkResolver(llm, s.prompts)
	if err := resolver.Verify(ctx); err != nil {
		logger.Warn("verification failed: %v", err)
		sink.OnStatus(StatusAuthFailed)
		return session, err
	}

	// 2. Enumerate and extract
	sink.OnStatus(StatusScanning)
	raws, err := s.inventory.Enumerate(ctx)
	if err != nil {
		logger.Warn("enumeration failed: %v", err)
		sink.OnStatus(StatusEnumerationFailed)
		if !errors.Is(err, domain.ErrEnumeration) {
			err = fmt.Errorf("%w: %w", domain.ErrEnumeration, err)
		}
		return session, err
	}

	for _, raw := range raws {
		device, ok := domain.NewHardwareDevice(raw)
		if !ok {
			continue
		}
		session.AddDevice(device)
		sink.OnDeviceDiscovered(device)
	}
	logger.Info("%d of %d descriptors carried identifiers", session.Len(), len(raws))

	if session.Len() == 0 {
		sink.OnStatus(StatusNoDevices)
		return session, nil
	}

	// 3. Resolve, strictly in enumeration order
	total := session.Len()
	sink.OnStatus(fmt.Sprintf("Searching drivers for %d devices (%s)...", total, llm.ModelName()))

	limiter := s.limiter()
	for i, device := range session.Devices() {
		sink.OnStatus(fmt.Sprintf("Searching (%d/%d): %s...",
			i+1, total, domain.TruncateName(device.Name, nameDisplayLimit)))

		var outcome domain.Outcome
		if err := limiter.Wait(ctx); err != nil {
			outcome = domain.Failed(fmt.Errorf("%w: %w", domain.ErrQuery, err))
		} else {
			outcome = resolver.Resolve(ctx, device, session.PlatformLabel)
		}

		if err := session.SetOutcome(i, outcome); err != nil {
			return session, err
		}
		sink.OnResolutionUpdated(i, outcome)

		if outcome.IsFailed() {
			sink.OnStatus("ERROR: " + FailureReason(outcome.Err))
			return session, outcome.Err
		}
	}

	sink.OnStatus(StatusCompleted)
	return session, nil
}

// Start runs one scan on a background goroutine. Events are delivered in
// order on the returned channel, which is closed once the scan has ended.
func (s *ScanService) Start(ctx context.Context, req driving.ScanRequest) <-chan driving.Event {
	events := make(chan driving.Event, eventBuffer)

	go func() {
		defer close(events)

		// Once ctx is done, events nobody reads are dropped so the
		// goroutine can finish.
		sink := driving.EventSinkFunc(func(e driving.Event) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		})
		if _, err := s.Scan(ctx, req, sink); err != nil {
			logger.Warn("scan ended with error: %v", err)
		}
	}()

	return events
}

// platformLabel computes the session's platform context once.
func (s *ScanService) platformLabel(ctx context.Context) string {
	if s.platform == nil {
		return ""
	}
	return s.platform.Label(ctx)
}

// limiter paces sequential queries. A zero interval never waits.
func (s *ScanService) limiter() *rate.Limiter {
	if s.settings.Scan.QueryInterval <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(s.settings.Scan.QueryInterval), 1)
}
