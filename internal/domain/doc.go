// Package domain contains the core entities and value objects for tiff2pdf.
//
// This package represents the innermost layer of the application. It has
// no dependencies on infrastructure concerns (file system, image decoding,
// PDF generation, logging) and contains only pure business logic.
//
// # Entities
//
//   - [SourceFile]: A TIFF file discovered in the source directory
//   - [FileIdentity]: Document identifier, page index and title parsed from a filename
//   - [Classification]: The result of classifying a SourceFile (recognized or not)
//   - [DocumentGroup]: All recognized files sharing one document identifier
//   - [Report]: Aggregate outcome of one conversion run
//
// # Design Principles
//
// Domain entities are:
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
