// Package biometrics holds the numeric side of voice verification: embedding
// vectors, cosine scoring, and liveness verdicts. It also declares the
// interfaces of the external models the server talks to (the speaker
// embedding extractor and the anti-spoofing classifier); their
// implementations live elsewhere.
package biometrics
