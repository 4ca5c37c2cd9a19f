// Package audio provides the two interchangeable audio processing
// implementations exposed by the service: a deliberately buggy variant that
// mishandles the motion flag by comparing it against a string, and a fixed
// variant with a correct boolean check. Both variants share one Processor
// interface so callers can run them side by side and compare the results.
package audio
