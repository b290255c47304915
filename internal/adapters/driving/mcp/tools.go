package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driving"
)

// ScanInput is the input schema for the scan_drivers tool.
type ScanInput struct {
	APIKey string `json:"api_key,omitempty" jsonschema:"API key for the LLM provider (defaults to the configured key)"`
}

// ScanOutput is the output schema for the scan_drivers tool.
type ScanOutput struct {
	SessionID string         `json:"session_id,omitempty"`
	Platform  string         `json:"platform,omitempty"`
	Devices   []DeviceOutput `json:"devices"`
	Status    []string       `json:"status"`
	Found     int            `json:"found"`
	NotFound  int            `json:"not_found"`
	Failed    int            `json:"failed"`
	Pending   int            `json:"pending"`
	Error     string         `json:"error,omitempty"`
}

// DeviceOutput is one scanned device and its outcome.
type DeviceOutput struct {
	Name       string `json:"name"`
	HardwareID string `json:"hardware_id"`
	Descriptor string `json:"descriptor"`
	State      string `json:"state"`
	URL        string `json:"url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ExtractInput is the input schema for the extract_identifiers tool.
type ExtractInput struct {
	Descriptors []string `json:"descriptors" jsonschema:"device descriptors such as PCI\\VEN_10DE&DEV_1E04&SUBSYS_12A31462"`
}

// ExtractOutput is the output schema for the extract_identifiers tool.
type ExtractOutput struct {
	Identifiers []IdentifierOutput `json:"identifiers"`
	Matched     int                `json:"matched"`
}

// IdentifierOutput is the extraction result for one descriptor.
type IdentifierOutput struct {
	Descriptor string `json:"descriptor"`
	Matched    bool   `json:"matched"`
	VendorID   string `json:"vendor_id,omitempty"`
	DeviceID   string `json:"device_id,omitempty"`
	HardwareID string `json:"hardware_id,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "scan_drivers",
		Description: "Scan local hardware and look up the official driver download link " +
			"for every PCI device. Devices are queried one at a time; links are not opened.",
	}, s.handleScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_identifiers",
		Description: "Extract VEN_xxxx&DEV_xxxx hardware identifiers from device descriptors",
	}, s.handleExtract)
}

// handleScan handles the scan_drivers tool invocation.
// Scan failures are reported in the output, not as tool errors, so the
// caller still sees the devices discovered before the failure.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	credential := strings.TrimSpace(input.APIKey)
	if credential == "" {
		credential = s.ports.Credential
	}
	if credential == "" {
		return nil, ScanOutput{}, errMissingCredential
	}

	rec := &statusRecorder{}
	session, err := s.ports.Scanner.Scan(ctx, driving.ScanRequest{Credential: credential}, rec)

	output := buildScanOutput(session, rec.lines)
	if err != nil {
		if session == nil {
			return nil, ScanOutput{}, err
		}
		output.Error = err.Error()
	}

	return nil, output, nil
}

// handleExtract handles the extract_identifiers tool invocation.
func (s *Server) handleExtract(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	output := ExtractOutput{
		Identifiers: make([]IdentifierOutput, len(input.Descriptors)),
	}

	for i, descriptor := range input.Descriptors {
		id := IdentifierOutput{Descriptor: descriptor}
		if ven, dev, ok := domain.ExtractIdentifiers(descriptor); ok {
			id.Matched = true
			id.VendorID = ven
			id.DeviceID = dev
			id.HardwareID = domain.HardwareDevice{VendorID: ven, DeviceID: dev}.HardwareID()
			output.Matched++
		}
		output.Identifiers[i] = id
	}

	return nil, output, nil
}

// buildScanOutput flattens a session into the tool output.
func buildScanOutput(session *domain.ScanSession, status []string) ScanOutput {
	output := ScanOutput{
		Devices: []DeviceOutput{},
		Status:  status,
	}
	if output.Status == nil {
		output.Status = []string{}
	}
	if session == nil {
		return output
	}

	output.SessionID = session.ID
	output.Platform = session.PlatformLabel

	outcomes := session.Outcomes()
	for i, device := range session.Devices() {
		outcome := outcomes[i]
		d := DeviceOutput{
			Name:       device.Name,
			HardwareID: device.HardwareID(),
			Descriptor: device.Descriptor,
			State:      outcome.State.String(),
			URL:        outcome.URL,
		}
		if outcome.Err != nil {
			d.Error = outcome.Err.Error()
		}

		switch outcome.State {
		case domain.OutcomeFound:
			output.Found++
		case domain.OutcomeNotFound:
			output.NotFound++
		case domain.OutcomeFailed:
			output.Failed++
		default:
			output.Pending++
		}
		output.Devices = append(output.Devices, d)
	}

	return output
}

// statusRecorder keeps the status lines of one scan.
// Devices and outcomes are read from the returned session instead.
type statusRecorder struct {
	lines []string
}

func (r *statusRecorder) OnStatus(message string) {
	r.lines = append(r.lines, message)
}

func (r *statusRecorder) OnDeviceDiscovered(domain.HardwareDevice) {}

func (r *statusRecorder) OnResolutionUpdated(int, domain.Outcome) {}

func (r *statusRecorder) OnCompleted() {}
