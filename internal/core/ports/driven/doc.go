// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DeviceInventory: Enumerates raw device descriptors from the OS
//   - PlatformProbe: Describes the running OS for query context
//   - LLMService / LLMFactory: The remote knowledge service
//   - PromptStore: Prompt templates for the knowledge service
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Clipboard: Copying links is disabled without it.
//   - Browser: Opening links is disabled without it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
