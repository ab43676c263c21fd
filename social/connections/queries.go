package connections

const (
	// an accepted edge is undirected: the user can sit on either side
	queryAcceptedPeers = `
		SELECT CASE WHEN user_id = $1 THEN target_user_id ELSE user_id END AS peer_id
		FROM connections
		WHERE (user_id = $1 OR target_user_id = $1)
		  AND status = 'accepted'
	`
)
