package kpi

var LockStripe = lockStripe

const AnalysisLockStripes = analysisLockStripes
