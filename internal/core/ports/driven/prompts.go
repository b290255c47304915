package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptDriverLink asks for the official driver download page of a device.
	// The template expects four %s placeholders: device name, vendor ID,
	// device ID and platform label.
	PromptDriverLink = "driver_link"
)

// NotFoundMarker is the literal reply the driver-link prompt demands when no
// safe official link exists.
const NotFoundMarker = "BULUNAMADI"

// DefaultDriverLinkPrompt is the built-in PromptDriverLink template.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const DefaultDriverLinkPrompt = `TASK: Find the URL of the OFFICIAL driver download page for the hardware below.
HARDWARE:
- Name: %s
- Vendor ID: VEN_%s
- Device ID: DEV_%s
- Operating System: %s
RULES:
1. Only give a link from the original manufacturer (NVIDIA, Intel, AMD, Realtek, etc.) or the computer manufacturer (Dell, HP, Lenovo).
2. NEVER give a link from third-party driver download sites (driverpack, etc.).
3. Return ONLY the URL. Do not add any explanation ("Here is the link:", etc.).
4. If you cannot find a safe/official link, write only "` + NotFoundMarker + `".
URL:`
