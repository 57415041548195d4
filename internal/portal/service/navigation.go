package service

import "github.com/aussiebroadwan/carebridge/internal/portal/domain"

// ComposeNavigation returns the menu for role. Every call builds new
// slices; unknown roles get the Default menu.
func ComposeNavigation(role domain.Role) []domain.NavItem {
	items := []domain.NavItem{
		domain.Link{Title: "Browse Campaign", Icon: "heart", Path: "/campaigns"},
		domain.Link{Title: "How It Works", Icon: "info", Path: "/how-it-works"},
	}

	switch role {
	case domain.RoleOwner:
		return append(items,
			domain.Link{Title: "Verification Portal", Icon: "shield", Path: "/verification"},
			domain.Link{Title: "Emergency Portal", Icon: "ambulance", Path: "/emergency"},
		)
	case domain.RoleVerifier:
		return append(items,
			becomeVerifier(),
			domain.DropdownGroup{
				Title: "Proposal Portal",
				Icon:  "file-text",
				Items: []domain.Link{
					{Title: "Revocation Proposal", Icon: "trash-2", Path: "/proposals/revocation"},
					{Title: "Fee Proposal", Icon: "dollar-sign", Path: "/proposals/fee"},
				},
			},
			domain.Link{Title: "Vote Portal", Icon: "vote", Path: "/vote"},
			domain.Link{Title: "Claim Reward", Icon: "award", Path: "/rewards"},
		)
	default:
		return append(items, becomeVerifier())
	}
}

func becomeVerifier() domain.DropdownGroup {
	return domain.DropdownGroup{
		Title: "Become Verifier",
		Icon:  "user",
		Items: []domain.Link{
			{Title: "Apply as Genesis Member", Icon: "shield", Path: "/apply/genesis"},
			{Title: "Apply as Health Professional", Icon: "user-check", Path: "/apply/health"},
			{Title: "Apply as DAO", Icon: "users", Path: "/apply/dao"},
		},
	}
}
