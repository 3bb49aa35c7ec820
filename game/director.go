package game

// Director plays a Session on the user's behalf.
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Session)

	/**
	 * Perform a single step of actions. Returns false if no action could be
	 * found.
	 */
	Act() (bool, error)

	/**
	 * Stop acting
	 */
	End()
}

// ActContinuously lets director act until the game ends or it runs out of
// actions.
func ActContinuously(director Director, session *Session) error {
	for !session.State().IsOver() {
		acted, err := director.Act()
		if err != nil {
			return err
		}
		if !acted {
			return nil
		}
	}
	return nil
}
