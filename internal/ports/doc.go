// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the application needs from external systems
// without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [FileSystem]: Lists TIFF sources and manages the output directory
//   - [FrameDecoder]: Decodes every frame of a (multi-page) TIFF file
//   - [Stager]: Provides scoped temporary storage for staged frame rasters
//   - [CanvasFactory] / [Canvas]: Builds one PDF document page by page
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement these interfaces
// with concrete implementations (local file system, x/image/tiff, fpdf,
// zerolog).
package ports
