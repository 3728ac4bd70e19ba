// Package domain contains the core domain entities produced by a website
// quality analysis: per-category reports, cross-category insights, prioritized
// action items and the aggregate analysis record. These types represent the
// business concepts and are intentionally free of infrastructure concerns so
// they can be shared across packages. The JSON shape of ComprehensiveAnalysis
// is a contract consumed by external clients and must stay stable.
package domain
