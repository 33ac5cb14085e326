package probe

// Here is a homegrown trace marker registered through the test config.
func Here() {}
