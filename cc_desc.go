package dect

import "github.com/cordless-go/dect/sfmt"

// Message grammars of the CC messages, EN 300 175-5 section 6.3.
// Each entry states the IE's status in the FP to PP and PP to FP
// directions.

var ccSetupMsgDesc = sfmt.MsgDesc{
	Name: "CC-SETUP",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IEFixedIdentity, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IENWKAssignedIdentity, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEBasicService, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IECipherInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESingleKeypad, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESignal, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureActivate, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEExtHOIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IETerminalCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEndToEndCompatibility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERateParameters, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IETransitDelay, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEWindowSize, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallingPartyNumber, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECalledPartyNumber, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECalledPartySubaddr, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESendingComplete, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallingPartyName, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallInformation, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccInfoMsgDesc = sfmt.MsgDesc{
	Name: "CC-INFO",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IELocationArea, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IENWKAssignedIdentity, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESingleKeypad, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESignal, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureActivate, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEExtHOIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECallingPartyNumber, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECalledPartyNumber, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECalledPartySubaddr, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESendingComplete, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IETestHookControl, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallingPartyName, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallInformation, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccSetupAckMsgDesc = sfmt.MsgDesc{
	Name: "CC-SETUP-ACK",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEInfoType, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFixedIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IELocationArea, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECallAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESignal, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEExtHOIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IETransitDelay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEWindowSize, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEDelimiterRequest, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var ccCallProcMsgDesc = sfmt.MsgDesc{
	Name: "CC-CALL-PROC",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECallAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESignal, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IETransitDelay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEWindowSize, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
	},
}

var ccAlertingMsgDesc = sfmt.MsgDesc{
	Name: "CC-ALERTING",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESignal, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IETerminalCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IETransitDelay, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEWindowSize, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccConnectMsgDesc = sfmt.MsgDesc{
	Name: "CC-CONNECT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECallAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESignal, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEExtHOIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IETerminalCapability, FPPP: sfmt.IENone, PPFP: sfmt.IEOptional},
		{Type: sfmt.IETransitDelay, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEWindowSize, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccConnectAckMsgDesc = sfmt.MsgDesc{
	Name: "CC-CONNECT-ACK",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccReleaseMsgDesc = sfmt.MsgDesc{
	Name: "CC-RELEASE",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEReleaseReason, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEProgressIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccReleaseComMsgDesc = sfmt.MsgDesc{
	Name: "CC-RELEASE-COM",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEReleaseReason, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIdentityType, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IELocationArea, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEFacility, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IESingleDisplay, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IEFeatureIndicate, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IENetworkParameter, FPPP: sfmt.IEOptional, PPFP: sfmt.IENone},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUPacket, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccServiceChangeMsgDesc = sfmt.MsgDesc{
	Name: "CC-SERVICE-CHANGE",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEPortableIdentity, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEServiceChangeInfo, FPPP: sfmt.IEMandatory, PPFP: sfmt.IEMandatory},
		{Type: sfmt.IECallAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IECodecList, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccServiceAcceptMsgDesc = sfmt.MsgDesc{
	Name: "CC-SERVICE-ACCEPT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionIdentity, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccServiceRejectMsgDesc = sfmt.MsgDesc{
	Name: "CC-SERVICE-REJECT",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IEReleaseReason, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEIWUAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEConnectionAttributes, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IERepeatIndicator, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IESegmentedInfo, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional, Flags: sfmt.FlagRepeat},
		{Type: sfmt.IEIWUToIWU, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccNotifyMsgDesc = sfmt.MsgDesc{
	Name: "CC-NOTIFY",
	IEs: []sfmt.IEDesc{
		{Type: sfmt.IETimerRestart, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
		{Type: sfmt.IEEscapeToProprietary, FPPP: sfmt.IEOptional, PPFP: sfmt.IEOptional},
	},
}

var ccIWUInfoMsgDesc = sfmt.MsgDesc{
	Name: "CC-IWU-INFO",
	IEs:  []sfmt.IEDesc{},
}
