// Package label turns extracted feature rows into training targets and
// coarse autonomic state classes.
//
// Binary stress labels come in two protocols. FixedThreshold compares
// every stress-index value against one cutoff, which is simple but
// skews the class balance badly whenever the cutoff does not match the
// cohort. MedianSplit thresholds each subject at their own median
// stress index instead, which pins the balance near 50/50 by
// construction.
//
// Independent of the binary labels, Classify scores a feature record
// against published guideline bands for stress index, RMSSD, LF/HF
// ratio and heart rate, and maps the summed score onto one of four
// autonomic states.
package label
