package dect

import "github.com/cordless-go/dect/sfmt"

// Message grammars of the MM messages, EN 300 175-5 section 6.3.

var mmAccessRightsAcceptMsgDesc = sfmt.MsgDesc{
	Name: "MM-ACCESS-RIGHTS-ACCEPT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFixedIdentity, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IELocationArea, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEAuthType, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECipherInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEZAPField, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEServiceClass, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESetupCapability, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEModelIdentifier, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var mmAccessRightsRequestMsgDesc = sfmt.MsgDesc{
	Name: "MM-ACCESS-RIGHTS-REQUEST",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IENone, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IEAuthType, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECipherInfo, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESetupCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IETerminalCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEModelIdentifier, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
	},
}

var mmAccessRightsRejectMsgDesc = sfmt.MsgDesc{
	Name: "MM-ACCESS-RIGHTS-REJECT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IERejectReason, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEDuration, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
	},
}

var mmAuthenticationRejectMsgDesc = sfmt.MsgDesc{
	Name: "MM-AUTHENTICATION-REJECT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEAuthType, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERejectReason, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var mmAuthenticationReplyMsgDesc = sfmt.MsgDesc{
	Name: "MM-AUTHENTICATION-REPLY",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IERES, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IERS, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEZAPField, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEServiceClass, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEKey, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var mmAuthenticationRequestMsgDesc = sfmt.MsgDesc{
	Name: "MM-AUTHENTICATION-REQUEST",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEAuthType, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IERAND, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IERES, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERS, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECipherInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var mmKeyAllocateMsgDesc = sfmt.MsgDesc{
	Name: "MM-KEY-ALLOCATE",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEAllocationType, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone},
		{Type: sfmt.IERAND, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone},
		{Type: sfmt.IERS, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var mmLocateAcceptMsgDesc = sfmt.MsgDesc{
	Name: "MM-LOCATE-ACCEPT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone},
		{Type: sfmt.IELocationArea, FPPP: sfmt.IEMandatory, PPFP: sfmt.IENone},
		{Type: sfmt.IEUseTPUI, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENWKAssignedIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEExtHOIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESetupCapability, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEDuration, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEModelIdentifier, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var mmLocateRejectMsgDesc = sfmt.MsgDesc{
	Name: "MM-LOCATE-REJECT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IERejectReason, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEDuration, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var mmLocateRequestMsgDesc = sfmt.MsgDesc{
	Name: "MM-LOCATE-REQUEST",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IENone, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IEFixedIdentity, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IELocationArea, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IENWKAssignedIdentity, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECipherInfo, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESetupCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IETerminalCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEModelIdentifier, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
	},
}

var mmTemporaryIdentityAssignMsgDesc = sfmt.MsgDesc{
	Name: "MM-TEMPORARY-IDENTITY-ASSIGN",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IELocationArea, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENWKAssignedIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEDuration, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var mmTemporaryIdentityAssignAckMsgDesc = sfmt.MsgDesc{
	Name: "MM-TEMPORARY-IDENTITY-ASSIGN-ACK",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
	},
}

var mmTemporaryIdentityAssignRejMsgDesc = sfmt.MsgDesc{
	Name: "MM-TEMPORARY-IDENTITY-ASSIGN-REJ",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IERejectReason, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
	},
}
