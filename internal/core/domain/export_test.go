package domain

// BuilderExecutableFor exposes the platform switch for testing.
var BuilderExecutableFor = builderExecutable
