package common

// VexcVersion is the current vexc version as a string.
const VexcVersion string = "0.1.0"

// TargetFileName is the default name for vexc target profile files.
const TargetFileName string = "vexc-target.toml"
