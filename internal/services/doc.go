// Package services implements the business logic layer for scan2pdf.
//
// The Scanner service sits between the command line surface and the device
// backend, orchestrating the three tool operations on top of the device
// abstraction and the document builder.
//
//	CLI (cobra command)
//	    │
//	    ▼
//	Scanner
//	    ├── ListDevices ──────────► Backend.Devices
//	    ├── CreateConfiguration ──► Device.Descriptors ─► scanconfig.Filter ─► scanconfig.WriteConfig
//	    └── Scan ─────────────────► scanconfig.Parse/Apply ─► Device.Scan ─► DocumentSink.Build
//
// Every failure crossing the service boundary is wrapped into a user facing
// error from pkg/errors; the CLI decides how much of the cause to print.
package services
