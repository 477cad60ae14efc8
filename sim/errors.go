package sim

import "errors"

// ErrSnapshotDenied is returned by Snapshot when the Simulation was built
// with WithSnapshotsDisabled, for a headless batch-benchmark run that never
// inspects intermediate state and would rather not pay for the defensive
// copy Snapshot otherwise performs on every call.
var ErrSnapshotDenied = errors.New("sim: snapshot denied")
