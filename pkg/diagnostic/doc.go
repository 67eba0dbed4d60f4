// Package diagnostic provides the analyzer framework for refstack: severity
// levels, diagnostics with source spans, a registry of data-driven
// analyzers, a configurable runner, and a verification harness that asserts
// a run's diagnostics against an expected list.
//
// Analyzers receive their unit of analysis as `any` to keep this package
// free of domain imports; manifest analyzers live in pkg/refcheck and
// assert the unit to their own input type.
package diagnostic
