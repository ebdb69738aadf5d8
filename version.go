package lettr

// Version is the SDK version, sent in the default User-Agent header.
const Version = "0.1.0"
