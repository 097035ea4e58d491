package draft

// SelectMode picks lowered_entry as soon as any unheard context is selected.
func SelectMode(contexts []UnheardContext) Mode {
	if len(contexts) > 0 {
		return ModeLoweredEntry
	}
	return ModeDefault
}
