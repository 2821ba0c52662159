package domain

// AccessScope define o subconjunto de registros que um ator pode enxergar.
// É resolvido uma única vez na entrada da requisição e propagado sem
// alterações para todos os sub-componentes, evitando divergência de regras
// de escopo entre agregações.
type AccessScope struct {
	// SellerID restringe as consultas a um único vendedor quando não-nulo
	SellerID *int
}

// NewAccessScope resolve o escopo efetivo a partir do papel do ator.
// Vendedores são sempre restritos aos próprios registros; gerentes e
// administradores recebem escopo irrestrito ou o filtro explícito informado.
func NewAccessScope(claims *Claims, explicitSellerID *int) AccessScope {
	if claims != nil && claims.UserRoleID == RoleSeller {
		sellerID := claims.UserID
		return AccessScope{SellerID: &sellerID}
	}
	return AccessScope{SellerID: explicitSellerID}
}

// Unrestricted indica se o escopo não possui filtro de vendedor
func (s AccessScope) Unrestricted() bool {
	return s.SellerID == nil
}
